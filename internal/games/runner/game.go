// Package runner implements a pseudo-3D three-lane endless runner.
// The player glides forward at increasing speed, switching lanes, jumping
// and rolling past trains and barriers while collecting coins.
package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is the simulation and renderer of one player's runs.
// It is not safe for concurrent use; the host drives it from one loop.
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	camera     Camera
	variants   variants
	difficulty *config.DifficultyManager
	spawner    *Spawner

	world  World
	phase  core.Phase
	runs   int          // Runs started since Reset, mixes the spawn seed
	events []core.Event // Reused step event buffer

	scene scene // Renderer scratch, never read by the simulation
}

// New creates a game from a validated runner config.
func New(cfg config.RunnerConfig) *Game {
	g := &Game{
		cfg:        cfg,
		camera:     NewCamera(cfg.Camera),
		variants:   newVariants(cfg.Objects),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		spawner:    NewSpawner(cfg.Spawner, 0),
		events:     make([]core.Event, 0, 8),
	}
	g.world.Objects = make([]Object, 0, 64)
	g.scene.setup()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Runner"
}

// Settings returns the runner configuration the game was built with.
func (g *Game) Settings() config.RunnerConfig {
	return g.cfg
}

// Runtime returns the runtime config passed to the last Reset.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// Reset returns to the Ready phase with an empty world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.runs = 0
	g.phase = core.PhaseReady
	g.world.Reset(g.difficulty.StartSpeed(g.cfg.Speed))
	g.events = g.events[:0]
}

// Start transitions into Playing. The world is reinitialized and the
// spawner reseeded, so every run begins from a clean state.
func (g *Game) Start() {
	g.runs++
	g.spawner.Reset(g.runtime.Seed + int64(g.runs-1))
	g.world.Reset(g.difficulty.StartSpeed(g.cfg.Speed))
	g.events = g.events[:0]
	g.phase = core.PhasePlaying
}

// Phase returns the current run phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// World exposes the world state for reading.
func (g *Game) World() *World {
	return &g.world
}

// Camera returns the projection camera.
func (g *Game) Camera() Camera {
	return g.camera
}

// Step advances one frame. Outside Playing it is a no-op and intents are
// dropped. The returned events are valid until the next call.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.phase == core.PhasePlaying {
		g.step(in)
	}
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns a summary of the current run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    int(g.world.Run.Score),
		Coins:    g.world.Run.Coins,
		Distance: g.world.Run.Distance,
		Speed:    g.world.Run.Speed,
	}
}

// travel returns the world units covered this run.
func (g *Game) travel() float64 {
	if k := g.cfg.Scoring.DistancePerSpeed; k > 0 {
		return g.world.Run.Distance / k
	}
	return 0
}

func (g *Game) emit(kind core.EventKind) {
	r := &g.world.Run
	g.events = append(g.events, core.Event{
		Kind:     kind,
		Score:    int(r.Score),
		Coins:    r.Coins,
		Distance: math.Floor(r.Distance),
	})
}
