package runner

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// faces are the three visible face colors of a cuboid.
type faces struct {
	top, side, front color.NRGBA
}

// palette holds every color the renderer uses, resolved once.
type palette struct {
	skyTop, skyHorizon    colorful.Color
	groundFar, groundNear colorful.Color

	sun, sunGlow color.NRGBA
	trackBed     color.NRGBA
	grid         color.NRGBA

	train, barrierLow, barrierHigh, player faces
	trainLight, trainWindow             color.NRGBA
	cutout                              color.NRGBA

	coin, coinShine color.NRGBA
	shadow, glow    color.NRGBA
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func toNRGBA(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func toCore(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b)
}

// shade derives lit top and shadowed side faces from a front color.
func shade(hex string) faces {
	base := mustHex(hex)
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}
	return faces{
		top:   toNRGBA(base.BlendLab(white, 0.3), 0xff),
		side:  toNRGBA(base.BlendLab(black, 0.4), 0xff),
		front: toNRGBA(base, 0xff),
	}
}

func newPalette() palette {
	groundNear := mustHex("#3a2f5b")
	return palette{
		skyTop:     mustHex("#0b1026"),
		skyHorizon: mustHex("#ff7e5f"),
		groundFar:  mustHex("#2a1f45"),
		groundNear: groundNear,

		sun:      toNRGBA(mustHex("#ffd166"), 0xff),
		sunGlow:  toNRGBA(mustHex("#ffb347"), 0x50),
		trackBed: toNRGBA(mustHex("#1d1533"), 0xff),
		grid:     toNRGBA(mustHex("#ff4fd8"), 0xb0),

		train:       shade("#c1121f"),
		barrierLow:  shade("#f77f00"),
		barrierHigh: shade("#e9c46a"),
		player:      shade("#48cae4"),
		trainLight:  toNRGBA(mustHex("#fff3b0"), 0xff),
		trainWindow: toNRGBA(mustHex("#14213d"), 0xc0),
		cutout:      toNRGBA(groundNear, 0xff),

		coin:      toNRGBA(mustHex("#ffd60a"), 0xff),
		coinShine: toNRGBA(mustHex("#fff8dc"), 0xd0),
		shadow:    color.NRGBA{A: 0x70},
		glow:      toNRGBA(mustHex("#90e0ef"), 0x48),
	}
}

// scene is renderer scratch: the palette, a per-row background gradient
// and the depth order buffer. It never feeds back into the simulation.
type scene struct {
	pal     palette
	rows    []core.Color
	height  int
	horizon int
	order   []int
}

func (s *scene) setup() {
	s.pal = newPalette()
	s.order = make([]int, 0, 64)
	s.height = -1
}

// gradient rebuilds the background rows when the surface height changes.
func (s *scene) gradient(height, horizon int) {
	if s.height == height && s.horizon == horizon {
		return
	}
	s.height, s.horizon = height, horizon
	if cap(s.rows) < height {
		s.rows = make([]core.Color, height)
	}
	s.rows = s.rows[:height]

	for y := 0; y < height; y++ {
		if y < horizon {
			t := float64(y) / float64(max(horizon-1, 1))
			s.rows[y] = toCore(s.pal.skyTop.BlendHcl(s.pal.skyHorizon, t))
			continue
		}
		t := float64(y-horizon) / float64(max(height-horizon-1, 1))
		s.rows[y] = toCore(s.pal.groundFar.BlendLab(s.pal.groundNear, t))
	}
}
