package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in terminal cells
	ScreenH  int   // Viewport height in terminal cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the spawner
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the externally visible run state.
type Phase int

const (
	PhaseReady    Phase = iota // Menu / waiting for the first run
	PhasePlaying               // Simulation Step executes
	PhaseGameOver              // Run ended by a collision
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is a read-only summary of the current run for the host.
type GameState struct {
	Phase    Phase
	Score    int
	Coins    int
	Distance float64
	Speed    float64
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// EventKind discriminates host-visible events.
type EventKind int

const (
	EventScoreChanged EventKind = iota + 1
	EventCoinsChanged
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "ScoreChanged"
	case EventCoinsChanged:
		return "CoinsChanged"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a host-visible signal emitted by a simulation step. It is a flat
// value so emitting one never allocates.
type Event struct {
	Kind     EventKind
	Score    int
	Coins    int
	Distance float64
}

// StepResult is returned by Step after each simulation tick.
// Events is owned by the game and is only valid until the next Step.
type StepResult struct {
	State  GameState
	Events []Event
}
