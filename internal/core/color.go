package core

import (
	"fmt"
	"image/color"
)

// Color is an opaque 24-bit RGB color used by both the pixel Canvas and
// the terminal Screen. The zero value is black.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex parses "#rrggbb" (the leading '#' is optional).
// Malformed input yields black.
func Hex(s string) Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}
	}
	return c
}

// String returns the "#rrggbb" form, suitable for lipgloss.Color.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to the image/color representation.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// NRGBA converts to a non-premultiplied color with the given alpha, the form
// Canvas fills take.
func (c Color) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Palette entries shared by the HUD and overlays.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(255, 255, 255)
	ColorYellow = RGB(255, 214, 10)
	ColorGray   = RGB(140, 140, 150)
	ColorRed    = RGB(230, 57, 70)
	ColorCyan   = RGB(72, 202, 228)
)
