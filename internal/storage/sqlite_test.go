package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{
		Source:          SourcePlay,
		Rule:            "B12/S123",
		Width:           100,
		Height:          90,
		Generations:     42,
		PeakPopulation:  5000,
		FinalPopulation: 4100,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}

	if run.Source != SourcePlay || run.Rule != "B12/S123" {
		t.Errorf("unexpected source/rule: %q %q", run.Source, run.Rule)
	}
	if run.Width != 100 || run.Height != 90 {
		t.Errorf("size = %dx%d, expected 100x90", run.Width, run.Height)
	}
	if run.Generations != 42 || run.PeakPopulation != 5000 || run.FinalPopulation != 4100 {
		t.Errorf("unexpected counters: %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID(999)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("expected nil for missing run, got %+v", run)
	}
}

func TestStoreLongestRuns(t *testing.T) {
	store := openTestStore(t)

	for _, gens := range []int{10, 300, 50, 200, 5} {
		if _, err := store.SaveRun(RunRecord{Source: SourceHeadless, Rule: "B3/S23", Width: 8, Height: 8, Generations: gens}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.LongestRuns(3)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Generations != 300 || runs[1].Generations != 200 || runs[2].Generations != 50 {
		t.Errorf("runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRun(RunRecord{Source: SourceSSH, Rule: "B12/S123", Width: 4, Height: 4, Generations: i, User: "alice"})
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	// Same-second inserts fall back to id order, newest first.
	if runs[0].Generations != 5 || runs[1].Generations != 4 {
		t.Errorf("expected newest runs first, got %v", runs)
	}
	if runs[0].User != "alice" {
		t.Errorf("User = %q, expected alice", runs[0].User)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastRun.IsZero() {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunRecord{Source: SourcePlay, Rule: "B12/S123", Width: 4, Height: 4, Generations: 10, PeakPopulation: 7})
	store.SaveRun(RunRecord{Source: SourcePlay, Rule: "B12/S123", Width: 4, Height: 4, Generations: 30, PeakPopulation: 12})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.TotalGenerations != 40 || stats.MaxGenerations != 30 {
		t.Errorf("generation totals wrong: %+v", stats)
	}
	if stats.AvgGenerations != 20 {
		t.Errorf("AvgGenerations = %v, expected 20", stats.AvgGenerations)
	}
	if stats.MaxPopulation != 12 {
		t.Errorf("MaxPopulation = %d, expected 12", stats.MaxPopulation)
	}
	if stats.LastRun.IsZero() {
		t.Error("LastRun should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Source: SourcePlay, Rule: "B12/S123", Width: 4, Height: 4})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
