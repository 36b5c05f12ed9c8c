package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStatsEmpty(t *testing.T) {
	store := openTest(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (PersistedStats{}) {
		t.Errorf("Expected zero stats for empty database, got %+v", st)
	}
}

func TestRecordRunAndStats(t *testing.T) {
	store := openTest(t)

	for _, r := range []RunRecord{
		{Score: 100, Coins: 4, Distance: 120.5},
		{Score: 50, Coins: 1, Distance: 60},
		{Score: 200, Coins: 10, Distance: 240},
	} {
		saved, err := store.RecordRun(r)
		if err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
		if _, err := uuid.Parse(saved.ID); err != nil {
			t.Errorf("RecordRun() assigned invalid id %q", saved.ID)
		}
		if saved.Player != "local" {
			t.Errorf("Expected default player 'local', got %q", saved.Player)
		}
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := PersistedStats{HighScore: 200, LifetimeRunCount: 3, TotalCoins: 15}
	if st != want {
		t.Errorf("Stats() = %+v, want %+v", st, want)
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTest(t)

	for _, score := range []int{100, 50, 200, 150} {
		if _, err := store.RecordRun(RunRecord{Score: score}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, want := range []int{200, 150, 100} {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, want %d", i, runs[i].Score, want)
		}
	}
}

func TestRunByID(t *testing.T) {
	store := openTest(t)

	saved, err := store.RecordRun(RunRecord{Player: "alice", Score: 42, Coins: 3, Distance: 77.25, Seed: 9})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	got, err := store.RunByID(saved.ID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Player != "alice" || got.Score != 42 || got.Coins != 3 || got.Distance != 77.25 || got.Seed != 9 {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	if _, err := store.RunByID(uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRecordRunRejectsBadID(t *testing.T) {
	store := openTest(t)
	if _, err := store.RecordRun(RunRecord{ID: "not-a-uuid", Score: 1}); err == nil {
		t.Error("Expected error for malformed id")
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTest(t)

	var ids []string
	for i := 0; i < 5; i++ {
		r, err := store.RecordRun(RunRecord{Score: i})
		if err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
		ids = append(ids, r.ID)
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[4] || runs[1].ID != ids[3] {
		t.Errorf("RecentRuns() returned %s,%s, want newest first", runs[0].ID, runs[1].ID)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTest(t)

	if _, err := store.RecordRun(RunRecord{Score: 10}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.LifetimeRunCount != 0 || st.HighScore != 0 {
		t.Errorf("Expected empty stats after clear, got %+v", st)
	}
}

func TestPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store1.RecordRun(RunRecord{Score: 999}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	st, err := store2.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.HighScore != 999 || st.LifetimeRunCount != 1 {
		t.Errorf("Expected persisted high score 999 over 1 run, got %+v", st)
	}
}
