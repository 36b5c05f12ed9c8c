package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestSpawnerInterval(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawner
	s := NewSpawner(cfg, 1)

	tests := []struct {
		speed float64
		want  int
	}{
		{0, cfg.BaseInterval},
		{3, cfg.BaseInterval - 12},
		{3.9, cfg.BaseInterval - 15},
		{1000, cfg.MinInterval},
	}
	for _, tt := range tests {
		if got := s.Interval(tt.speed); got != tt.want {
			t.Errorf("Interval(%v) = %d, want %d", tt.speed, got, tt.want)
		}
	}

	prev := math.MaxInt
	for speed := 0.0; speed < 30; speed += 0.25 {
		got := s.Interval(speed)
		if got > prev {
			t.Fatalf("interval grew from %d to %d at speed %v", prev, got, speed)
		}
		prev = got
	}
}

func TestMaybeSpawnCadence(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawner
	s := NewSpawner(cfg, 3)

	var w World
	w.Reset(3)
	interval := s.Interval(3)

	w.Run.FrameCount = interval + 1
	if s.MaybeSpawn(&w) || len(w.Objects) != 0 {
		t.Fatal("spawned off cadence")
	}
	w.Run.FrameCount = interval * 2
	if !s.MaybeSpawn(&w) || len(w.Objects) == 0 {
		t.Fatal("no spawn on cadence frame with an empty track")
	}
	for _, o := range w.Objects {
		if !o.Active || o.Z < cfg.SpawnZ {
			t.Errorf("new object %+v not active at or beyond spawn depth", o)
		}
	}
}

func TestSpawnAntiOverlap(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawner
	for _, blocker := range []Kind{KindTrain, KindBarrierLow, KindBarrierHigh} {
		for lane := LaneLeft; lane <= LaneRight; lane++ {
			for seed := int64(0); seed < 50; seed++ {
				s := NewSpawner(cfg, seed)
				var w World
				w.Add(blocker, lane, cfg.NearThreshold+1)

				if s.spawnAt(&w, lane) {
					t.Fatalf("%v in lane %d: spawn accepted", blocker, lane)
				}
				if len(w.Objects) != 1 {
					t.Fatalf("%v in lane %d: %d objects after rejected spawn", blocker, lane, len(w.Objects))
				}
			}
		}
	}
}

func TestSpawnIgnoresNearAndOtherLanes(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawner
	s := NewSpawner(cfg, 9)

	var w World
	w.Add(KindTrain, LaneCenter, cfg.NearThreshold-1)  // already close
	w.Add(KindTrain, LaneLeft, cfg.NearThreshold+50)   // other lane
	w.Add(KindCoin, LaneCenter, cfg.NearThreshold+100) // pickups never block

	if !s.spawnAt(&w, LaneCenter) {
		t.Fatal("spawn rejected although the lane is clear beyond the threshold")
	}
}

func TestSpawnPickupLine(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawner
	for seed := int64(0); seed < 200; seed++ {
		s := NewSpawner(cfg, seed)
		var w World
		s.spawnAt(&w, LaneRight)
		if len(w.Objects) == 0 || w.Objects[0].Kind != KindCoin {
			continue
		}

		if len(w.Objects) != cfg.CoinCount {
			t.Fatalf("pickup line has %d coins, want %d", len(w.Objects), cfg.CoinCount)
		}
		for i, o := range w.Objects {
			if o.Kind != KindCoin || o.Lane != LaneRight || !o.Active {
				t.Errorf("coin %d = %+v", i, o)
			}
			if want := cfg.SpawnZ + float64(i)*cfg.CoinSpacing; o.Z != want {
				t.Errorf("coin %d at z=%v, want %v", i, o.Z, want)
			}
		}
		return
	}
	t.Fatal("no seed produced a pickup line")
}

func TestSpawnDistribution(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawner
	s := NewSpawner(cfg, 2024)

	const draws = 20000
	counts := map[Kind]int{}
	var w World
	for i := 0; i < draws; i++ {
		w.Reset(3)
		s.spawnAt(&w, LaneCenter)
		counts[w.Objects[0].Kind]++
	}

	want := map[Kind]float64{
		KindCoin:        0.30,
		KindTrain:       0.28,
		KindBarrierLow:  0.21,
		KindBarrierHigh: 0.21,
	}
	for kind, share := range want {
		got := float64(counts[kind]) / draws
		if math.Abs(got-share) > 0.02 {
			t.Errorf("%v share = %.3f, want %.2f", kind, got, share)
		}
	}
}
