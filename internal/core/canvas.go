package core

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// maxEllipseSegments bounds the polygon used to flatten an ellipse.
const maxEllipseSegments = 64

// Point is a position in canvas pixel space.
type Point struct {
	X, Y float64
}

// Canvas is the resizable pixel surface the renderer paints on. Filled shapes
// are clipped to the canvas and rasterized with anti-aliased coverage from
// golang.org/x/image/vector. The rasterizer, the uniform source and the
// polygon scratch buffers are reused so a frame does not churn allocations.
type Canvas struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	src    *image.Uniform
	poly   []Point // scratch polygon, reused across fills
	clip   []Point // clipping scratch
}

// NewCanvas creates a canvas of the given pixel dimensions, cleared to black.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		raster: vector.NewRasterizer(1, 1),
		src:    image.NewUniform(color.NRGBA{}),
		poly:   make([]Point, 0, maxEllipseSegments*2),
		clip:   make([]Point, 0, maxEllipseSegments*2),
	}
	c.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Resize re-synchronizes the pixel dimensions. It is a no-op when the size
// is unchanged; otherwise the content is discarded.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.Width() && height == c.Height() {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Image exposes the backing image, e.g. for PNG encoding.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// At returns the color of a pixel; out-of-bounds reads return black.
func (c *Canvas) At(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return Color{}
	}
	i := c.img.PixOffset(x, y)
	return Color{R: c.img.Pix[i], G: c.img.Pix[i+1], B: c.img.Pix[i+2]}
}

// Clear fills every pixel with an opaque color.
func (c *Canvas) Clear(col Color) {
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = col.R, col.G, col.B, 0xff
	}
}

// FillRow paints pixels [x0, x1) of row y with an opaque color.
func (c *Canvas) FillRow(y, x0, x1 int, col Color) {
	if y < 0 || y >= c.Height() {
		return
	}
	x0 = Clamp(x0, 0, c.Width())
	x1 = Clamp(x1, 0, c.Width())
	for x := x0; x < x1; x++ {
		i := c.img.PixOffset(x, y)
		c.img.Pix[i], c.img.Pix[i+1], c.img.Pix[i+2], c.img.Pix[i+3] = col.R, col.G, col.B, 0xff
	}
}

// FillQuad fills the quadrilateral a-b-c-d. col may be translucent.
func (c *Canvas) FillQuad(a, b, p, d Point, col color.NRGBA) {
	c.poly = append(c.poly[:0], a, b, p, d)
	c.fillPolygon(col)
}

// FillRect fills the axis-aligned rectangle spanning (x0,y0)-(x1,y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.NRGBA) {
	c.FillQuad(Point{x0, y0}, Point{x1, y0}, Point{x1, y1}, Point{x0, y1}, col)
}

// Line draws a segment of the given thickness as a filled quad.
func (c *Canvas) Line(from, to Point, width float64, col color.NRGBA) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	c.FillQuad(
		Point{from.X + nx, from.Y + ny},
		Point{to.X + nx, to.Y + ny},
		Point{to.X - nx, to.Y - ny},
		Point{from.X - nx, from.Y - ny},
		col,
	)
}

// FillEllipse fills an axis-aligned ellipse centered at (cx, cy).
// The outline is flattened to a polygon whose segment count grows with size.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col color.NRGBA) {
	if !(rx > 0 && ry > 0) {
		return
	}
	n := Clamp(int(rx+ry), 12, maxEllipseSegments)
	c.poly = c.poly[:0]
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		c.poly = append(c.poly, Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)})
	}
	c.fillPolygon(col)
}

// fillPolygon clips c.poly to the canvas and rasterizes it.
func (c *Canvas) fillPolygon(col color.NRGBA) {
	w, h := float64(c.Width()), float64(c.Height())
	pts := c.poly
	for _, e := range [4]clipEdge{{0, 0, false}, {0, w, true}, {1, 0, false}, {1, h, true}} {
		pts = clipPolygon(pts, c.clip[:0], e)
		c.poly, c.clip = pts, c.poly[:0]
		if len(pts) < 3 {
			return
		}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	x0 := Clamp(int(math.Floor(minX)), 0, c.Width())
	y0 := Clamp(int(math.Floor(minY)), 0, c.Height())
	x1 := Clamp(int(math.Ceil(maxX)), 0, c.Width())
	y1 := Clamp(int(math.Ceil(maxY)), 0, c.Height())
	if x1 <= x0 || y1 <= y0 {
		return
	}

	z := c.raster
	z.Reset(x1-x0, y1-y0)
	ox, oy := float64(x0), float64(y0)
	z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	z.ClosePath()

	c.src.C = col
	r := image.Rect(x0, y0, x1, y1)
	z.Draw(c.img, r, c.src, image.Point{})
}

// clipEdge is one canvas border: axis 0 clips x, 1 clips y; upper keeps
// points below the bound, otherwise points above it.
type clipEdge struct {
	axis  int
	bound float64
	upper bool
}

func (e clipEdge) inside(p Point) bool {
	v := p.X
	if e.axis == 1 {
		v = p.Y
	}
	if e.upper {
		return v <= e.bound
	}
	return v >= e.bound
}

func (e clipEdge) intersect(a, b Point) Point {
	if e.axis == 0 {
		t := (e.bound - a.X) / (b.X - a.X)
		return Point{X: e.bound, Y: a.Y + (b.Y-a.Y)*t}
	}
	t := (e.bound - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + (b.X-a.X)*t, Y: e.bound}
}

// clipPolygon is one Sutherland-Hodgman pass; the result is appended to out.
func clipPolygon(in, out []Point, e clipEdge) []Point {
	if len(in) == 0 {
		return out
	}
	prev := in[len(in)-1]
	prevIn := e.inside(prev)
	for _, cur := range in {
		curIn := e.inside(cur)
		switch {
		case curIn && !prevIn:
			out = append(out, e.intersect(prev, cur), cur)
		case curIn:
			out = append(out, cur)
		case prevIn:
			out = append(out, e.intersect(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}
