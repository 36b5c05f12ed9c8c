// Package config provides YAML/TOML configuration loading and difficulty
// presets for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains every tunable of the runner simulation.
// All distances are world units, all rates are per simulation frame.
type RunnerConfig struct {
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Track      TrackConfig      `yaml:"track" toml:"track"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Speed      SpeedConfig      `yaml:"speed" toml:"speed"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Spawner    SpawnerConfig    `yaml:"spawner" toml:"spawner"`
	Objects    ObjectsConfig    `yaml:"objects" toml:"objects"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Missions   MissionsConfig   `yaml:"missions" toml:"missions"`
}

// CameraConfig defines the projective camera.
type CameraConfig struct {
	Perspective     float64 `yaml:"perspective" toml:"perspective"`           // Focal constant
	Height          float64 `yaml:"height" toml:"height"`                     // Camera height above the ground
	Z               float64 `yaml:"z" toml:"z"`                               // Camera depth (behind the player, negative)
	HorizonRatio    float64 `yaml:"horizon_ratio" toml:"horizon_ratio"`       // Horizon row as a fraction of surface height
	ReferenceHeight float64 `yaml:"reference_height" toml:"reference_height"` // 0 = fixed focal length
}

// TrackConfig defines lane geometry and object lifetime.
type TrackConfig struct {
	Width         float64 `yaml:"width" toml:"width"`                   // laneToX(1) == Width/2
	LaneTolerance float64 `yaml:"lane_tolerance" toml:"lane_tolerance"` // Max |player.lane - object.lane| for contact
	LaneSmoothing float64 `yaml:"lane_smoothing" toml:"lane_smoothing"` // Fraction of remaining lane distance per frame
	CullDistance  float64 `yaml:"cull_distance" toml:"cull_distance"`   // Trailing edge distance behind the player before removal
}

// PhysicsConfig defines vertical player physics.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity" toml:"gravity"`
	JumpForce  float64 `yaml:"jump_force" toml:"jump_force"`
	FastFall   float64 `yaml:"fast_fall" toml:"fast_fall"`
	RollFrames int     `yaml:"roll_frames" toml:"roll_frames"`
}

// SpeedConfig defines forward speed progression.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial" toml:"initial"`
	Increment float64 `yaml:"increment" toml:"increment"`
	Max       float64 `yaml:"max" toml:"max"`
}

// ScoringConfig converts speed into score and distance each frame.
type ScoringConfig struct {
	ScorePerSpeed    float64 `yaml:"score_per_speed" toml:"score_per_speed"`
	DistancePerSpeed float64 `yaml:"distance_per_speed" toml:"distance_per_speed"`
}

// SpawnerConfig defines procedural content generation.
type SpawnerConfig struct {
	SpawnZ        float64 `yaml:"spawn_z" toml:"spawn_z"`
	NearThreshold float64 `yaml:"near_threshold" toml:"near_threshold"` // Lane is blocked while an obstacle is beyond this depth
	BaseInterval  int     `yaml:"base_interval" toml:"base_interval"`
	MinInterval   int     `yaml:"min_interval" toml:"min_interval"`
	SpeedFactor   float64 `yaml:"speed_factor" toml:"speed_factor"`
	PickupChance  float64 `yaml:"pickup_chance" toml:"pickup_chance"` // Share of spawns that are pickup lines
	TrainShare    float64 `yaml:"train_share" toml:"train_share"`     // Share of obstacles that are trains
	LowShare      float64 `yaml:"low_share" toml:"low_share"`         // Share of obstacles that are low barriers
	CoinCount     int     `yaml:"coin_count" toml:"coin_count"`
	CoinSpacing   float64 `yaml:"coin_spacing" toml:"coin_spacing"`
}

// ObjectGeometry describes one world object variant.
type ObjectGeometry struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Depth     float64 `yaml:"depth" toml:"depth"`
	Clearance float64 `yaml:"clearance" toml:"clearance"` // Player.y above which a jump clears it
	Elevation float64 `yaml:"elevation" toml:"elevation"` // Height of the object's base above ground
	Gap       float64 `yaml:"gap" toml:"gap"`             // Passable opening at the base
}

// ObjectsConfig holds the per-variant geometry table.
type ObjectsConfig struct {
	Train       ObjectGeometry `yaml:"train" toml:"train"`
	BarrierLow  ObjectGeometry `yaml:"barrier_low" toml:"barrier_low"`
	BarrierHigh ObjectGeometry `yaml:"barrier_high" toml:"barrier_high"`
	Coin        ObjectGeometry `yaml:"coin" toml:"coin"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	RollHeight float64 `yaml:"roll_height" toml:"roll_height"`
	Depth      float64 `yaml:"depth" toml:"depth"`
	Z          float64 `yaml:"z" toml:"z"` // Nominal depth of the player's center
}

// MissionsConfig points at the remote content service. An empty endpoint
// means the static mission list is used.
type MissionsConfig struct {
	Endpoint       string `yaml:"endpoint" toml:"endpoint"`
	APIKey         string `yaml:"api_key" toml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"`
}

// DifficultyConfig defines the difficulty preset applied to speed.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled" toml:"enabled"`             // false = speed never increases
	InitialLevel float64 `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	HeadStart    float64 `yaml:"head_start" toml:"head_start"`       // Share of the speed range granted at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset keeps the config's own difficulty section.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports every setting that would break the simulation.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Camera.Perspective > 0, "camera.perspective must be > 0, got %v", c.Camera.Perspective)
	check(c.Camera.HorizonRatio >= 0 && c.Camera.HorizonRatio < 1, "camera.horizon_ratio must be in [0,1), got %v", c.Camera.HorizonRatio)
	check(c.Camera.ReferenceHeight >= 0, "camera.reference_height must be >= 0, got %v", c.Camera.ReferenceHeight)
	check(c.Track.Width > 0, "track.width must be > 0, got %v", c.Track.Width)
	check(c.Track.LaneTolerance > 0 && c.Track.LaneTolerance <= 1, "track.lane_tolerance must be in (0,1], got %v", c.Track.LaneTolerance)
	check(c.Track.LaneSmoothing > 0 && c.Track.LaneSmoothing <= 1, "track.lane_smoothing must be in (0,1], got %v", c.Track.LaneSmoothing)
	check(c.Physics.Gravity > 0, "physics.gravity must be > 0, got %v", c.Physics.Gravity)
	check(c.Physics.RollFrames > 0, "physics.roll_frames must be > 0, got %v", c.Physics.RollFrames)
	check(c.Speed.Initial > 0, "speed.initial must be > 0, got %v", c.Speed.Initial)
	check(c.Speed.Max >= c.Speed.Initial, "speed.max (%v) must be >= speed.initial (%v)", c.Speed.Max, c.Speed.Initial)
	check(c.Speed.Increment >= 0, "speed.increment must be >= 0, got %v", c.Speed.Increment)
	check(c.Spawner.MinInterval >= 1, "spawner.min_interval must be >= 1, got %v", c.Spawner.MinInterval)
	check(c.Spawner.BaseInterval >= c.Spawner.MinInterval, "spawner.base_interval must be >= min_interval")
	check(c.Spawner.SpawnZ > c.Camera.Z, "spawner.spawn_z must be in front of the camera")
	check(c.Spawner.PickupChance >= 0 && c.Spawner.PickupChance <= 1, "spawner.pickup_chance must be in [0,1]")
	check(c.Spawner.TrainShare >= 0 && c.Spawner.LowShare >= 0 && c.Spawner.TrainShare+c.Spawner.LowShare <= 1,
		"spawner.train_share + low_share must be within [0,1]")
	check(c.Spawner.CoinCount >= 1, "spawner.coin_count must be >= 1, got %v", c.Spawner.CoinCount)
	check(c.Player.RollHeight > 0 && c.Player.RollHeight <= c.Player.Height, "player.roll_height must be in (0, height]")
	check(c.Player.Depth > 0, "player.depth must be > 0, got %v", c.Player.Depth)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
