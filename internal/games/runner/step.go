package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// step runs the simulation for one Playing frame.
func (g *Game) step(in core.InputFrame) {
	w := &g.world
	p := &w.Player
	run := &w.Run

	p.applyIntents(in, g.cfg.Physics)

	run.FrameCount++
	run.Speed = math.Min(run.Speed+g.difficulty.Increment(g.cfg.Speed), g.cfg.Speed.Max)
	run.Distance += run.Speed * g.cfg.Scoring.DistancePerSpeed

	prevScore := int(run.Score)
	run.Score += run.Speed * g.cfg.Scoring.ScorePerSpeed
	if int(run.Score) != prevScore {
		g.emit(core.EventScoreChanged)
	}

	g.spawner.MaybeSpawn(w)

	p.smoothLane(g.cfg.Track.LaneSmoothing)
	p.integrate(g.cfg.Physics.Gravity)
	p.tickRoll()

	if g.advanceObjects() {
		g.phase = core.PhaseGameOver
		g.emit(core.EventGameOver)
		return
	}

	w.cull(&g.variants, g.cfg.Player.Z-g.cfg.Track.CullDistance)
}

// advanceObjects moves every object toward the player and resolves contact.
// It stops at the first hit and reports it.
func (g *Game) advanceObjects() bool {
	w := &g.world
	p := &w.Player
	body := g.playerSpan()
	tolerance := g.cfg.Track.LaneTolerance

	for i := range w.Objects {
		o := &w.Objects[i]
		o.Z -= w.Run.Speed

		if !o.Active || math.Abs(p.Lane-float64(o.Lane)) >= tolerance {
			continue
		}
		if !g.variants.span(o).Overlaps(body) {
			continue
		}

		v := &g.variants[o.Kind]
		if o.Kind.IsPickup() {
			o.Active = false
			w.Run.Coins++
			g.emit(core.EventCoinsChanged)
			continue
		}
		if v.hit(p, v.geom) {
			return true
		}
	}
	return false
}

// playerSpan is the fixed depth interval of the player's body.
func (g *Game) playerSpan() core.Span {
	half := g.cfg.Player.Depth / 2
	return core.Span{Min: g.cfg.Player.Z - half, Max: g.cfg.Player.Z + half}
}
