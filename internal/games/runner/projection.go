package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Camera is the fixed projective camera. It sits Height units above the
// ground and Z units along the travel axis (negative = behind the player).
type Camera struct {
	Perspective     float64
	Height          float64
	Z               float64
	HorizonRatio    float64
	ReferenceHeight float64
}

// NewCamera builds a camera from its config section.
func NewCamera(cfg config.CameraConfig) Camera {
	return Camera{
		Perspective:     cfg.Perspective,
		Height:          cfg.Height,
		Z:               cfg.Z,
		HorizonRatio:    cfg.HorizonRatio,
		ReferenceHeight: cfg.ReferenceHeight,
	}
}

// Projected is a world point mapped onto the drawing surface.
type Projected struct {
	X, Y    float64
	Scale   float64
	Visible bool
}

// Point returns the screen position as a canvas point.
func (p Projected) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// HorizonY returns the screen row that represents infinite depth.
func (c Camera) HorizonY(surfaceH int) float64 {
	return float64(surfaceH) * c.HorizonRatio
}

// Focal returns the focal constant for a surface height. With a reference
// height the focal length grows with the surface so the scene keeps its
// framing on any viewport.
func (c Camera) Focal(surfaceH int) float64 {
	if c.ReferenceHeight > 0 && surfaceH > 0 {
		return c.Perspective * float64(surfaceH) / c.ReferenceHeight
	}
	return c.Perspective
}

// Project maps a world point to the surface. Points at or behind the camera
// plane are reported as not visible with zero scale.
func (c Camera) Project(x, y, z float64, surfaceW, surfaceH int) Projected {
	relZ := z - c.Z
	if relZ <= 0 {
		return Projected{}
	}
	scale := c.Focal(surfaceH) / relZ
	return Projected{
		X:       float64(surfaceW)/2 + x*scale,
		Y:       c.HorizonY(surfaceH) + (c.Height-y)*scale,
		Scale:   scale,
		Visible: true,
	}
}

// LaneToX converts a (possibly fractional) lane to a world x-coordinate.
func LaneToX(lane, trackWidth float64) float64 {
	return lane * trackWidth / 2
}
