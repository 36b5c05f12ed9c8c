package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Spawner procedurally places obstacles and pickup lines at the spawn depth.
// A single uniform draw picks the content, so the thresholds below are the
// exact boundaries of the pickup / train / low / high split.
type Spawner struct {
	cfg config.SpawnerConfig
	rng *rand.Rand

	pickupBelow float64
	trainBelow  float64
	lowBelow    float64
}

// NewSpawner creates a spawner with a seeded RNG.
func NewSpawner(cfg config.SpawnerConfig, seed int64) *Spawner {
	obstacle := 1 - cfg.PickupChance
	s := &Spawner{
		cfg:         cfg,
		pickupBelow: cfg.PickupChance,
	}
	s.trainBelow = s.pickupBelow + obstacle*cfg.TrainShare
	s.lowBelow = s.trainBelow + obstacle*cfg.LowShare
	s.Reset(seed)
	return s
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Interval returns the spawn cadence in frames for the given speed.
func (s *Spawner) Interval(speed float64) int {
	return max(s.cfg.MinInterval, s.cfg.BaseInterval-int(math.Floor(speed*s.cfg.SpeedFactor)))
}

// MaybeSpawn runs once per frame and spawns on cadence frames.
// It reports whether anything was added.
func (s *Spawner) MaybeSpawn(w *World) bool {
	if w.Run.FrameCount%s.Interval(w.Run.Speed) != 0 {
		return false
	}
	lane := s.rng.Intn(3) + LaneLeft
	return s.spawnAt(w, lane)
}

// spawnAt attempts one spawn in the given lane.
func (s *Spawner) spawnAt(w *World, lane int) bool {
	if s.laneBlocked(w, lane) {
		return false
	}

	r := s.rng.Float64()
	switch {
	case r < s.pickupBelow:
		for i := 0; i < s.cfg.CoinCount; i++ {
			w.Add(KindCoin, lane, s.cfg.SpawnZ+float64(i)*s.cfg.CoinSpacing)
		}
	case r < s.trainBelow:
		w.Add(KindTrain, lane, s.cfg.SpawnZ)
	case r < s.lowBelow:
		w.Add(KindBarrierLow, lane, s.cfg.SpawnZ)
	default:
		w.Add(KindBarrierHigh, lane, s.cfg.SpawnZ)
	}
	return true
}

// laneBlocked reports whether an obstacle in the lane is still far out,
// which would stack a new one right behind it.
func (s *Spawner) laneBlocked(w *World, lane int) bool {
	for i := range w.Objects {
		o := &w.Objects[i]
		if o.Lane == lane && !o.Kind.IsPickup() && o.Z > s.cfg.NearThreshold {
			return true
		}
	}
	return false
}
