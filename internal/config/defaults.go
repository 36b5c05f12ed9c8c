package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration. It mirrors
// defaults/runner.yaml and is the last fallback when nothing else parses.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Camera: CameraConfig{
			Perspective:     60,
			Height:          55,
			Z:               -70,
			HorizonRatio:    0.34,
			ReferenceHeight: 80,
		},
		Track: TrackConfig{
			Width:         80,
			LaneTolerance: 0.5,
			LaneSmoothing: 0.2,
			CullDistance:  120,
		},
		Physics: PhysicsConfig{
			Gravity:    0.5,
			JumpForce:  10,
			FastFall:   12,
			RollFrames: 40,
		},
		Speed: SpeedConfig{
			Initial:   3,
			Increment: 0.0015,
			Max:       9,
		},
		Scoring: ScoringConfig{
			ScorePerSpeed:    0.05,
			DistancePerSpeed: 0.1,
		},
		Spawner: SpawnerConfig{
			SpawnZ:        700,
			NearThreshold: 520,
			BaseInterval:  70,
			MinInterval:   24,
			SpeedFactor:   4,
			PickupChance:  0.3,
			TrainShare:    0.4,
			LowShare:      0.3,
			CoinCount:     5,
			CoinSpacing:   36,
		},
		Objects: ObjectsConfig{
			Train:       ObjectGeometry{Width: 30, Height: 40, Depth: 60, Clearance: 40},
			BarrierLow:  ObjectGeometry{Width: 30, Height: 14, Depth: 8, Clearance: 12},
			BarrierHigh: ObjectGeometry{Width: 30, Height: 45, Depth: 8, Gap: 22},
			Coin:        ObjectGeometry{Width: 14, Height: 14, Depth: 8, Elevation: 12},
		},
		Player: PlayerConfig{
			Width:      20,
			Height:     30,
			RollHeight: 14,
			Depth:      20,
			Z:          0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			HeadStart:    0.5,
		},
		Missions: MissionsConfig{
			TimeoutSeconds: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
