package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// quietConfig never spawns and keeps a constant speed, so tests control
// every object on the track.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.BaseInterval = 1 << 30
	cfg.Spawner.MinInterval = 1 << 30
	cfg.Difficulty.Enabled = false
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newPlaying(cfg config.RunnerConfig, seed int64) *Game {
	g := New(cfg)
	g.Reset(testRuntime(seed))
	g.Start()
	return g
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func config0() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}
