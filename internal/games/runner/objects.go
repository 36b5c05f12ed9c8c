package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Kind is the closed set of world object variants.
type Kind uint8

const (
	KindTrain Kind = iota
	KindBarrierLow
	KindBarrierHigh
	KindCoin

	kindCount
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindTrain:
		return "TRAIN"
	case KindBarrierLow:
		return "BARRIER_LOW"
	case KindBarrierHigh:
		return "BARRIER_HIGH"
	case KindCoin:
		return "COIN"
	default:
		return "UNKNOWN"
	}
}

// IsPickup reports whether contact collects the object instead of ending the run.
func (k Kind) IsPickup() bool {
	return k == KindCoin
}

// Object is an obstacle or pickup on the track. Z is the depth of its near
// face; it spans [Z, Z+depth] along the travel axis.
type Object struct {
	ID     uint64
	Kind   Kind
	Lane   int
	Z      float64
	Active bool
}

// hitFunc reports whether a player overlapping an obstacle is struck.
type hitFunc func(p *Player, geom config.ObjectGeometry) bool

// variant is the per-kind geometry and collision rule.
type variant struct {
	geom config.ObjectGeometry
	hit  hitFunc // nil for pickups
}

// variants maps every Kind to its behavior.
type variants [kindCount]variant

func newVariants(cfg config.ObjectsConfig) variants {
	return variants{
		KindTrain:       {geom: cfg.Train, hit: hitUnlessCleared},
		KindBarrierLow:  {geom: cfg.BarrierLow, hit: hitUnlessCleared},
		KindBarrierHigh: {geom: cfg.BarrierHigh, hit: hitUnlessRolling},
		KindCoin:        {geom: cfg.Coin},
	}
}

// span returns the depth interval the object occupies.
func (v *variants) span(o *Object) core.Span {
	return core.Span{Min: o.Z, Max: o.Z + v[o.Kind].geom.Depth}
}

// Jumping over is the only escape.
func hitUnlessCleared(p *Player, geom config.ObjectGeometry) bool {
	return p.Y <= geom.Clearance
}

// Jumping does not help; the gap at the base only fits a rolling player.
func hitUnlessRolling(p *Player, _ config.ObjectGeometry) bool {
	return !p.IsRolling
}
