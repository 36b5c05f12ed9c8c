package runner

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Renderer constants in world units unless noted.
const (
	nearPlane   = 4.0  // Closest depth to the camera that is drawn
	gridSpacing = 40.0 // Distance between cross lines of the grid
	farFactor   = 2.0  // Grid reaches this multiple of the spawn depth
	coinSpin    = 0.12 // Radians per frame of the coin pulse
	trackLanes  = 1.5  // Outer lane boundary in lane units
)

// laneBoundaries are the grid's longitudinal lines in lane units.
var laneBoundaries = [...]float64{-trackLanes, -0.5, 0.5, trackLanes}

// Render paints the current world onto the canvas. It only reads the world,
// so rendering an unchanged world twice yields identical pixels.
func (g *Game) Render(c *core.Canvas) {
	w, h := c.Width(), c.Height()
	if w == 0 || h == 0 {
		return
	}

	horizon := core.Clamp(int(math.Round(g.camera.HorizonY(h))), 0, h)
	g.scene.gradient(h, horizon)
	for y := 0; y < horizon; y++ {
		c.FillRow(y, 0, w, g.scene.rows[y])
	}
	g.drawSun(c, horizon)
	for y := horizon; y < h; y++ {
		c.FillRow(y, 0, w, g.scene.rows[y])
	}

	g.drawTrack(c)
	g.drawObjects(c)
	if g.phase == core.PhasePlaying {
		g.drawPlayer(c)
	}
}

func (g *Game) project(c *core.Canvas, x, y, z float64) Projected {
	return g.camera.Project(x, y, z, c.Width(), c.Height())
}

// drawSun paints the celestial accent above the horizon.
func (g *Game) drawSun(c *core.Canvas, horizon int) {
	if horizon <= 0 {
		return
	}
	pal := &g.scene.pal
	cx := float64(c.Width()) * 0.78
	cy := float64(horizon) * 0.5
	r := float64(c.Height()) * 0.09
	c.FillEllipse(cx, cy, r*1.8, r*1.8, pal.sunGlow)
	c.FillEllipse(cx, cy, r, r, pal.sun)
}

// drawTrack paints the track bed and the scrolling perspective grid.
func (g *Game) drawTrack(c *core.Canvas) {
	pal := &g.scene.pal
	tw := g.cfg.Track.Width
	nearZ := g.camera.Z + nearPlane
	farZ := g.cfg.Spawner.SpawnZ * farFactor

	left, right := LaneToX(-trackLanes, tw), LaneToX(trackLanes, tw)
	c.FillQuad(
		g.project(c, left, 0, nearZ).Point(),
		g.project(c, right, 0, nearZ).Point(),
		g.project(c, right, 0, farZ).Point(),
		g.project(c, left, 0, farZ).Point(),
		pal.trackBed,
	)

	// Lane lines converge on the horizon; each is projected at two depths
	for _, b := range laneBoundaries {
		x := LaneToX(b, tw)
		near, far := g.project(c, x, 0, nearZ), g.project(c, x, 0, farZ)
		c.Line(near.Point(), far.Point(), 1, pal.grid)
	}

	offset := math.Mod(g.travel(), gridSpacing)
	first := math.Ceil((nearZ+offset)/gridSpacing)*gridSpacing - offset
	for z := first; z < farZ; z += gridSpacing {
		a, b := g.project(c, left, 0, z), g.project(c, right, 0, z)
		if !a.Visible || !b.Visible {
			continue
		}
		c.Line(a.Point(), b.Point(), core.ClampF(a.Scale, 0.6, 1.5), pal.grid)
	}
}

// drawObjects paints active objects farthest first.
func (g *Game) drawObjects(c *core.Canvas) {
	objs := g.world.Objects
	order := g.scene.order[:0]
	for i := range objs {
		if objs[i].Active {
			order = append(order, i)
		}
	}
	slices.SortFunc(order, func(a, b int) int {
		if d := cmp.Compare(objs[b].Z, objs[a].Z); d != 0 {
			return d
		}
		return cmp.Compare(objs[a].ID, objs[b].ID)
	})
	g.scene.order = order

	for _, i := range order {
		g.drawObject(c, &objs[i])
	}
}

func (g *Game) drawObject(c *core.Canvas, o *Object) {
	pal := &g.scene.pal
	geom := g.variants[o.Kind].geom
	x := LaneToX(float64(o.Lane), g.cfg.Track.Width)

	switch o.Kind {
	case KindCoin:
		g.drawCoin(c, o, x)
	case KindTrain:
		g.drawCuboid(c, x, 0, o.Z, geom.Width, geom.Height, geom.Depth, pal.train)
		if o.Z <= g.camera.Z+nearPlane {
			return
		}
		// Windshield and a pair of headlights on the front face
		hw := geom.Width / 2
		c.FillQuad(
			g.project(c, x-hw*0.8, geom.Height*0.85, o.Z).Point(),
			g.project(c, x+hw*0.8, geom.Height*0.85, o.Z).Point(),
			g.project(c, x+hw*0.8, geom.Height*0.55, o.Z).Point(),
			g.project(c, x-hw*0.8, geom.Height*0.55, o.Z).Point(),
			pal.trainWindow,
		)
		for _, side := range [2]float64{-1, 1} {
			p := g.project(c, x+side*hw*0.55, geom.Height*0.22, o.Z)
			r := geom.Width * 0.09 * p.Scale
			c.FillEllipse(p.X, p.Y, r, r, pal.trainLight)
		}
	case KindBarrierLow:
		g.drawCuboid(c, x, 0, o.Z, geom.Width, geom.Height, geom.Depth, pal.barrierLow)
	case KindBarrierHigh:
		g.drawCuboid(c, x, 0, o.Z, geom.Width, geom.Height, geom.Depth, pal.barrierHigh)
		if o.Z <= g.camera.Z+nearPlane {
			return
		}
		// Ground-colored opening at the base
		inset := geom.Width * 0.12
		x0, x1 := x-geom.Width/2+inset, x+geom.Width/2-inset
		c.FillQuad(
			g.project(c, x0, geom.Gap, o.Z).Point(),
			g.project(c, x1, geom.Gap, o.Z).Point(),
			g.project(c, x1, 0, o.Z).Point(),
			g.project(c, x0, 0, o.Z).Point(),
			pal.cutout,
		)
	}
}

// drawCoin paints a pickup as an ellipse whose width pulses over time.
func (g *Game) drawCoin(c *core.Canvas, o *Object, x float64) {
	pal := &g.scene.pal
	geom := g.variants[KindCoin].geom
	radius := geom.Width / 2
	p := g.project(c, x, geom.Elevation+radius, o.Z+geom.Depth/2)
	if !p.Visible {
		return
	}
	phase := float64(g.world.Run.FrameCount)*coinSpin + float64(o.ID)
	ry := radius * p.Scale
	rx := ry * (0.25 + 0.75*math.Abs(math.Sin(phase)))
	c.FillEllipse(p.X, p.Y, rx, ry, pal.coin)
	c.FillEllipse(p.X-rx*0.25, p.Y-ry*0.25, rx*0.35, ry*0.35, pal.coinShine)
}

// drawCuboid is the shared box primitive. The anchor (x, y, z) is the center
// of the bottom edge of the near face. Faces are filled top, side, front so
// nearer faces overpaint farther ones.
func (g *Game) drawCuboid(c *core.Canvas, x, y, z, width, height, depth float64, f faces) {
	near := g.camera.Z + nearPlane
	z1 := z + depth
	if z1 <= near {
		return
	}
	z0 := math.Max(z, near)
	x0, x1 := x-width/2, x+width/2
	y0, y1 := y, y+height
	pt := func(x, y, z float64) core.Point {
		return g.project(c, x, y, z).Point()
	}

	if y1 < g.camera.Height {
		c.FillQuad(pt(x0, y1, z0), pt(x1, y1, z0), pt(x1, y1, z1), pt(x0, y1, z1), f.top)
	}

	// Only the side facing the track center can be seen
	xs, sided := 0.0, false
	switch {
	case x0 > 0:
		xs, sided = x0, true
	case x1 < 0:
		xs, sided = x1, true
	}
	if sided {
		c.FillQuad(pt(xs, y0, z0), pt(xs, y1, z0), pt(xs, y1, z1), pt(xs, y0, z1), f.side)
	}

	c.FillQuad(pt(x0, y0, z0), pt(x1, y0, z0), pt(x1, y1, z0), pt(x0, y1, z0), f.front)
}

// drawPlayer paints the shadow, the body and the airborne glow.
func (g *Game) drawPlayer(c *core.Canvas) {
	pal := &g.scene.pal
	p := &g.world.Player
	body := g.cfg.Player
	x := LaneToX(p.Lane, g.cfg.Track.Width)
	height := body.Height
	if p.IsRolling {
		height = body.RollHeight
	}

	if s := g.project(c, x, 0, body.Z); s.Visible {
		lift := 1 / (1 + p.Y/body.Height)
		rx := body.Width * 0.7 * s.Scale * lift
		c.FillEllipse(s.X, s.Y, rx, rx*0.3, pal.shadow)
	}

	g.drawCuboid(c, x, p.Y, body.Z-body.Depth/2, body.Width, height, body.Depth, pal.player)

	if !p.Grounded() {
		if e := g.project(c, x, p.Y+height/2, body.Z); e.Visible {
			c.FillEllipse(e.X, e.Y, body.Width*0.9*e.Scale, height*0.8*e.Scale, pal.glow)
		}
	}
}
