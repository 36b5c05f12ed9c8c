package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Lanes of the track.
const (
	LaneLeft   = -1
	LaneCenter = 0
	LaneRight  = 1
)

// laneSnap is the distance below which lane smoothing settles on the target.
const laneSnap = 1e-3

// Player is the runner's body and its commanded state.
type Player struct {
	Lane       float64 // Continuous position in [-1, 1]
	TargetLane int     // Commanded lane
	Y, DY      float64 // Height above ground and vertical velocity
	IsJumping  bool
	IsRolling  bool
	RollTimer  int
}

// Grounded reports whether the player stands on the ground.
func (p *Player) Grounded() bool {
	return !p.IsJumping && p.Y <= 0
}

// applyIntents folds one frame of intents into the command fields. A duck
// arriving with the jump that fired in the same frame is dropped.
func (p *Player) applyIntents(in core.InputFrame, phys config.PhysicsConfig) {
	if d := in.LaneDelta(); d != 0 {
		p.TargetLane = core.Clamp(p.TargetLane+d, LaneLeft, LaneRight)
	}

	jumped := false
	if in.Has(core.ActionJump) && !p.IsJumping {
		p.DY = phys.JumpForce
		p.IsJumping = true
		p.IsRolling = false
		p.RollTimer = 0
		jumped = true
	}

	if in.Has(core.ActionDuck) && !jumped {
		if p.Grounded() {
			p.IsRolling = true
			p.RollTimer = phys.RollFrames
		} else {
			p.DY = -phys.FastFall
		}
	}
}

// smoothLane moves the lane a fixed fraction of the remaining distance
// toward the target. A factor in (0, 1] never overshoots.
func (p *Player) smoothLane(factor float64) {
	target := float64(p.TargetLane)
	p.Lane = core.Lerp(p.Lane, target, factor)
	if math.Abs(target-p.Lane) < laneSnap {
		p.Lane = target
	}
}

// integrate advances vertical motion by one frame.
func (p *Player) integrate(gravity float64) {
	p.Y += p.DY
	if p.Y > 0 {
		p.DY -= gravity
		return
	}
	p.Y = 0
	p.DY = 0
	p.IsJumping = false
}

// tickRoll counts down an active roll.
func (p *Player) tickRoll() {
	if !p.IsRolling {
		return
	}
	p.RollTimer--
	if p.RollTimer <= 0 {
		p.RollTimer = 0
		p.IsRolling = false
	}
}

// RunState holds the scalar state of one run.
type RunState struct {
	Speed      float64
	Score      float64
	Coins      int
	Distance   float64
	FrameCount int
}

// World owns everything the simulation mutates. The renderer only reads it.
type World struct {
	Player  Player
	Objects []Object
	Run     RunState

	nextID uint64
}

// Reset reinitializes the world for a new run, keeping the object buffer.
func (w *World) Reset(startSpeed float64) {
	w.Player = Player{}
	clear(w.Objects)
	w.Objects = w.Objects[:0]
	w.Run = RunState{Speed: startSpeed}
	w.nextID = 0
}

// Add places a new active object on the track and returns its ID.
func (w *World) Add(kind Kind, lane int, z float64) uint64 {
	w.nextID++
	w.Objects = append(w.Objects, Object{
		ID:     w.nextID,
		Kind:   kind,
		Lane:   lane,
		Z:      z,
		Active: true,
	})
	return w.nextID
}

// cull drops objects whose trailing edge is behind the limit, in place.
func (w *World) cull(v *variants, limit float64) {
	kept := w.Objects[:0]
	for _, o := range w.Objects {
		if v.span(&o).Max >= limit {
			kept = append(kept, o)
		}
	}
	clear(w.Objects[len(kept):])
	w.Objects = kept
}
