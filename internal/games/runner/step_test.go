package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// overlapZ places an object so that after one step it overlaps the player.
const overlapZ = 5.0

func TestRollingPassesHighBarrier(t *testing.T) {
	g := newPlaying(quietConfig(), 1)
	w := g.World()
	w.Player.IsRolling = true
	w.Player.RollTimer = 1000
	w.Add(KindBarrierHigh, LaneCenter, overlapZ)

	for i := 0; i < 30; i++ {
		res := g.Step(idle())
		if n := countEvents(res.Events, core.EventGameOver); n != 0 {
			t.Fatalf("frame %d: game over while rolling", i)
		}
	}
	if g.Phase() != core.PhasePlaying {
		t.Errorf("phase = %v, want Playing", g.Phase())
	}
}

func TestHighBarrierEndsRun(t *testing.T) {
	g := newPlaying(quietConfig(), 1)
	w := g.World()
	w.Run.Coins = 3
	w.Add(KindBarrierHigh, LaneCenter, overlapZ)

	gameOvers := 0
	var last core.Event
	for i := 0; i < 10; i++ {
		res := g.Step(idle())
		for _, e := range res.Events {
			if e.Kind == core.EventGameOver {
				gameOvers++
				last = e
			}
		}
	}

	if gameOvers != 1 {
		t.Fatalf("game over fired %d times, want 1", gameOvers)
	}
	if last.Coins != 3 {
		t.Errorf("game over coins = %d, want 3", last.Coins)
	}
	if st := g.State(); !st.GameOver() || st.Coins != 3 {
		t.Errorf("state = %+v", st)
	}
}

func TestJumpDoesNotClearHighBarrier(t *testing.T) {
	g := newPlaying(quietConfig(), 1)
	w := g.World()
	w.Player.Y = 100
	w.Player.IsJumping = true
	w.Add(KindBarrierHigh, LaneCenter, overlapZ)

	res := g.Step(idle())
	if countEvents(res.Events, core.EventGameOver) != 1 {
		t.Error("airborne player passed a high barrier")
	}
}

func TestObstacleClearance(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		y    float64
		hit  bool
	}{
		{"train grounded", KindTrain, 0, true},
		{"train low jump", KindTrain, 30, true},
		{"train cleared", KindTrain, 80, false},
		{"low barrier grounded", KindBarrierLow, 0, true},
		{"low barrier cleared", KindBarrierLow, 25, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newPlaying(quietConfig(), 1)
			w := g.World()
			if tt.y > 0 {
				w.Player.Y = tt.y
				w.Player.IsJumping = true
			}
			w.Add(tt.kind, LaneCenter, overlapZ)

			res := g.Step(idle())
			if got := countEvents(res.Events, core.EventGameOver) == 1; got != tt.hit {
				t.Errorf("hit = %v, want %v", got, tt.hit)
			}
		})
	}
}

func TestTrainJumpableAtEverySpeed(t *testing.T) {
	for _, speed := range []float64{3, 5, 7, 9} {
		cleared := -1
		for jumpAt := 0; jumpAt < 150 && cleared < 0; jumpAt++ {
			cfg := quietConfig()
			cfg.Speed.Initial = speed
			g := newPlaying(cfg, 1)
			g.World().Add(KindTrain, LaneCenter, 300)

			for i := 0; i < 150 && g.Phase() == core.PhasePlaying; i++ {
				in := idle()
				if i == jumpAt {
					in.Set(core.ActionJump)
				}
				g.Step(in)
			}
			if g.Phase() == core.PhasePlaying {
				cleared = jumpAt
			}
		}
		if cleared < 0 {
			t.Errorf("speed %v: no jump timing clears a train", speed)
		}
	}
}

func TestCoinLineCollected(t *testing.T) {
	cfg := quietConfig()
	g := newPlaying(cfg, 1)
	w := g.World()
	for i := 0; i < 5; i++ {
		w.Add(KindCoin, LaneCenter, 300+float64(i)*cfg.Spawner.CoinSpacing)
	}

	var coins []int
	for i := 0; i < 400 && g.Phase() == core.PhasePlaying; i++ {
		res := g.Step(idle())
		for _, e := range res.Events {
			if e.Kind == core.EventCoinsChanged {
				coins = append(coins, e.Coins)
			}
		}
	}

	if len(coins) != 5 {
		t.Fatalf("got %d coin events, want 5: %v", len(coins), coins)
	}
	for i, c := range coins {
		if c != i+1 {
			t.Errorf("event %d reported %d coins, want %d", i, c, i+1)
		}
	}
	if g.State().Coins != 5 {
		t.Errorf("coins = %d, want 5", g.State().Coins)
	}
	if g.Phase() != core.PhasePlaying {
		t.Error("collecting coins ended the run")
	}
}

func TestLaneToleranceBlocksContact(t *testing.T) {
	g := newPlaying(quietConfig(), 1)
	w := g.World()
	w.Add(KindTrain, LaneLeft, overlapZ)
	w.Add(KindBarrierHigh, LaneRight, overlapZ)
	w.Add(KindCoin, LaneRight, overlapZ)
	w.Add(KindCoin, LaneLeft, overlapZ)

	for i := 0; i < 20; i++ {
		res := g.Step(idle())
		if len(res.Events) > 0 && countEvents(res.Events, core.EventScoreChanged) != len(res.Events) {
			t.Fatalf("frame %d: unexpected events %+v", i, res.Events)
		}
	}
	if st := g.State(); st.GameOver() || st.Coins != 0 {
		t.Errorf("state = %+v, want no contact", st)
	}
}

func TestLaneToleranceEdge(t *testing.T) {
	tests := []struct {
		lane float64
		hit  bool
	}{
		{0.5, false}, // exactly the tolerance away
		{0.2, false},
		{0.51, true},
		{0.9, true},
	}
	for _, tt := range tests {
		cfg := quietConfig()
		cfg.Track.LaneSmoothing = 1e-9 // keep the lane where the test put it
		g := newPlaying(cfg, 1)
		w := g.World()
		w.Player.Lane = tt.lane
		w.Add(KindTrain, LaneRight, overlapZ)

		res := g.Step(idle())
		if got := countEvents(res.Events, core.EventGameOver) == 1; got != tt.hit {
			t.Errorf("lane %v: hit = %v, want %v", tt.lane, got, tt.hit)
		}
	}
}

func TestHitShortCircuits(t *testing.T) {
	g := newPlaying(quietConfig(), 1)
	w := g.World()
	w.Add(KindTrain, LaneCenter, overlapZ)
	w.Add(KindCoin, LaneCenter, overlapZ)
	coinZ := w.Objects[1].Z

	res := g.Step(idle())
	if countEvents(res.Events, core.EventGameOver) != 1 {
		t.Fatal("expected game over")
	}
	if countEvents(res.Events, core.EventCoinsChanged) != 0 || w.Run.Coins != 0 {
		t.Error("objects after the hit were evaluated")
	}
	if w.Objects[1].Z != coinZ {
		t.Errorf("coin advanced to %v after the hit", w.Objects[1].Z)
	}
}

func TestSpeedProgression(t *testing.T) {
	cfg := quietConfig()
	cfg.Difficulty.Enabled = true
	cfg.Speed.Increment = 0.05
	g := newPlaying(cfg, 1)

	prev := g.State().Speed
	if prev != cfg.Speed.Initial {
		t.Fatalf("start speed = %v, want %v", prev, cfg.Speed.Initial)
	}
	for i := 0; i < 1000; i++ {
		st := g.Step(idle()).State
		if st.Speed < prev {
			t.Fatalf("frame %d: speed decreased %v -> %v", i, prev, st.Speed)
		}
		if st.Speed > cfg.Speed.Max {
			t.Fatalf("frame %d: speed %v exceeds max %v", i, st.Speed, cfg.Speed.Max)
		}
		prev = st.Speed
	}
	if prev != cfg.Speed.Max {
		t.Errorf("speed = %v after 1000 frames, want max %v", prev, cfg.Speed.Max)
	}
}

func TestScoreAndDistance(t *testing.T) {
	g := newPlaying(quietConfig(), 1)

	scoreEvents := 0
	prevDist := 0.0
	for i := 0; i < 300; i++ {
		res := g.Step(idle())
		scoreEvents += countEvents(res.Events, core.EventScoreChanged)
		if res.State.Distance <= prevDist {
			t.Fatalf("frame %d: distance did not increase", i)
		}
		prevDist = res.State.Distance
	}
	if st := g.State(); st.Score == 0 || scoreEvents != st.Score {
		t.Errorf("score = %d with %d score events, want one event per point", st.Score, scoreEvents)
	}
}

func TestCullBehindPlayer(t *testing.T) {
	g := newPlaying(quietConfig(), 1)
	w := g.World()
	w.Add(KindBarrierLow, LaneLeft, -300)
	w.Add(KindBarrierLow, LaneLeft, 400)

	g.Step(idle())
	if len(w.Objects) != 1 || w.Objects[0].Z < 0 {
		t.Errorf("objects after cull = %+v", w.Objects)
	}
}

func TestStepOutsidePlayingIsNoop(t *testing.T) {
	g := New(quietConfig())
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	res := g.Step(in)
	if len(res.Events) != 0 || g.World().Run.FrameCount != 0 || g.World().Player.IsJumping {
		t.Errorf("Ready step changed the world: %+v", res)
	}

	g.Start()
	g.World().Add(KindTrain, LaneCenter, overlapZ)
	g.Step(idle())
	if g.Phase() != core.PhaseGameOver {
		t.Fatal("expected game over")
	}
	frames := g.World().Run.FrameCount
	if res := g.Step(idle()); len(res.Events) != 0 || g.World().Run.FrameCount != frames {
		t.Error("step ran after game over")
	}
}

func TestStartResetsWorld(t *testing.T) {
	g := newPlaying(quietConfig(), 1)
	w := g.World()
	w.Add(KindCoin, LaneCenter, 100)
	w.Run.Coins = 4
	for i := 0; i < 20; i++ {
		g.Step(idle())
	}

	g.Start()
	if len(w.Objects) != 0 || w.Run.FrameCount != 0 || w.Run.Coins != 0 || w.Run.Score != 0 {
		t.Errorf("world not reset: run %+v, %d objects", w.Run, len(w.Objects))
	}
	if w.Player != (Player{}) {
		t.Errorf("player not reset: %+v", w.Player)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, []Object) {
		g := newPlaying(config0(), 12345)
		for i := 0; i < 1500 && g.Phase() == core.PhasePlaying; i++ {
			g.Step(g.Autopilot())
		}
		return g.State(), append([]Object(nil), g.World().Objects...)
	}

	s1, o1 := run()
	s2, o2 := run()
	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if len(o1) != len(o2) {
		t.Fatalf("object counts differ: %d vs %d", len(o1), len(o2))
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Errorf("object %d differs: %+v vs %+v", i, o1[i], o2[i])
		}
	}
}
