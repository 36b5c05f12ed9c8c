package runner

// fixedPoint scales world floats into snapshot integers.
const fixedPoint = 1000

// Snapshot is a flat summary of the world for determinism checks and
// headless reports. Uses primitive types only for stable hashing.
type Snapshot struct {
	Frame    uint64
	Phase    int
	Speed    int // Fixed-point
	Score    int // Fixed-point
	Coins    int
	Distance int // Fixed-point

	PlayerLane   int
	PlayerTarget int
	PlayerY      int // Fixed-point
	PlayerState  int // Bit 0 jumping, bit 1 rolling
	RollTimer    int

	// Active objects, 4 ints each: Kind, Lane, Z (fixed-point), ID
	ObjectCount int
	ObjectData  []int
}

// Snapshot returns the current world as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	p := w.Player

	state := 0
	if p.IsJumping {
		state |= 1
	}
	if p.IsRolling {
		state |= 2
	}

	data := make([]int, 0, len(w.Objects)*4)
	for i := range w.Objects {
		o := &w.Objects[i]
		if !o.Active {
			continue
		}
		data = append(data, int(o.Kind), o.Lane, fixed(o.Z), int(o.ID)) //#nosec G115 -- ids stay far below MaxInt
	}

	return Snapshot{
		Frame:        uint64(max(0, w.Run.FrameCount)), //nolint:gosec // frame count is never negative
		Phase:        int(g.phase),
		Speed:        fixed(w.Run.Speed),
		Score:        fixed(w.Run.Score),
		Coins:        w.Run.Coins,
		Distance:     fixed(w.Run.Distance),
		PlayerLane:   fixed(p.Lane),
		PlayerTarget: p.TargetLane,
		PlayerY:      fixed(p.Y),
		PlayerState:  state,
		RollTimer:    p.RollTimer,
		ObjectCount:  len(data) / 4,
		ObjectData:   data,
	}
}

func fixed(v float64) int {
	return int(v * fixedPoint)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Phase)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Distance)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerLane)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerTarget) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerState)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RollTimer)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObjectCount)  //#nosec G115 -- hash computation

	for _, v := range snap.ObjectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
