package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Autopilot lead times in frames.
const (
	lookaheadFrames = 30
	jumpLeadFrames  = 6
	rollLeadFrames  = 8
)

// Autopilot returns the intents a simple bot would send this frame: switch
// lanes away from trains, jump low barriers and roll under high ones. It is
// used for headless snapshots and attract mode.
func (g *Game) Autopilot() core.InputFrame {
	in := core.NewInputFrame()
	if g.phase != core.PhasePlaying {
		return in
	}
	p := &g.world.Player
	speed := g.world.Run.Speed
	threat, ok := g.nearestThreat(p.TargetLane, speed*lookaheadFrames)
	if !ok {
		return in
	}
	gap := threat.Z - g.playerSpan().Max

	switch threat.Kind {
	case KindBarrierLow:
		if p.Grounded() && gap <= speed*jumpLeadFrames {
			in.Set(core.ActionJump)
		}
	case KindBarrierHigh:
		if !p.IsRolling && gap <= speed*rollLeadFrames {
			in.Set(core.ActionDuck)
		}
	case KindTrain:
		for _, d := range [2]int{-1, 1} {
			lane := p.TargetLane + d
			if lane < LaneLeft || lane > LaneRight {
				continue
			}
			if _, blocked := g.nearestThreat(lane, speed*lookaheadFrames*1.5); !blocked {
				if d < 0 {
					in.Set(core.ActionLaneLeft)
				} else {
					in.Set(core.ActionLaneRight)
				}
				return in
			}
		}
		if p.Grounded() && gap <= speed*jumpLeadFrames {
			in.Set(core.ActionJump)
		}
	}
	return in
}

// nearestThreat finds the closest obstacle in a lane that has not passed the
// player and starts within reach.
func (g *Game) nearestThreat(lane int, reach float64) (Object, bool) {
	body := g.playerSpan()
	var best Object
	found := false
	for i := range g.world.Objects {
		o := &g.world.Objects[i]
		if !o.Active || o.Kind.IsPickup() || o.Lane != lane {
			continue
		}
		if g.variants.span(o).Max <= body.Min || o.Z-body.Max > reach {
			continue
		}
		if !found || o.Z < best.Z {
			best, found = *o, true
		}
	}
	return best, found
}
