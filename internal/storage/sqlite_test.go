package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunResult{Player: "ana", Score: 12, Level: 2, Reason: "time_expired"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score 12 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	created := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	id, err := store.SaveRun(RunResult{
		Player:    "ana",
		Score:     42,
		Level:     3,
		Reason:    "time_expired",
		Duration:  95 * time.Second,
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() should return a UUID, got %q: %v", id, err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id || r.Player != "ana" || r.Score != 42 || r.Level != 3 || r.Reason != "time_expired" {
		t.Errorf("Run round trip mismatch: %+v", r)
	}
	if r.Duration != 95*time.Second {
		t.Errorf("Expected duration 95s, got %v", r.Duration)
	}
	if !r.CreatedAt.Equal(created) {
		t.Errorf("Expected created_at %v, got %v", created, r.CreatedAt)
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.NewString()

	got, err := store.SaveRun(RunResult{ID: want, Player: "bo", Score: 1, Level: 1, Reason: "quit"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected ID %s, got %s", want, got)
	}

	if _, err := store.SaveRun(RunResult{ID: want, Player: "bo", Score: 2, Level: 1, Reason: "quit"}); err == nil {
		t.Error("Saving a duplicate ID should fail")
	}
}

func TestStoreTopRunsOrder(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	runs := []RunResult{
		{Player: "a", Score: 50, Level: 5, CreatedAt: base},
		{Player: "b", Score: 200, Level: 9, CreatedAt: base.Add(time.Minute)},
		{Player: "c", Score: 100, Level: 6, CreatedAt: base.Add(2 * time.Minute)},
		{Player: "d", Score: 100, Level: 7, CreatedAt: base.Add(3 * time.Minute)},
		{Player: "e", Score: 100, Level: 7, CreatedAt: base.Add(4 * time.Minute)},
	}
	for _, r := range runs {
		r.Reason = "time_expired"
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	want := []string{"b", "d", "e", "c", "a"}
	if len(top) != len(want) {
		t.Fatalf("Expected %d runs, got %d", len(want), len(top))
	}
	for i, p := range want {
		if top[i].Player != p {
			t.Errorf("Position %d: expected %s, got %s (score %d level %d)",
				i, p, top[i].Player, top[i].Score, top[i].Level)
		}
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunResult{Player: "p", Score: (i + 1) * 100, Level: 1, Reason: "time_expired"})
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{10, 5},
		{0, 5}, // Default limit
	}
	for _, tt := range tests {
		runs, err := store.TopRuns(tt.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tt.limit, err)
		}
		if len(runs) != tt.want {
			t.Errorf("TopRuns(%d) returned %d runs, expected %d", tt.limit, len(runs), tt.want)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveRun(RunResult{Player: "ana", Score: 100, Level: 4, Reason: "time_expired"})
	store.SaveRun(RunResult{Player: "bo", Score: 300, Level: 7, Reason: "time_expired"})
	store.SaveRun(RunResult{Player: "ana", Score: 200, Level: 5, Reason: "time_expired"})

	tests := []struct {
		player string
		want   int
	}{
		{"", 300},
		{"ana", 200},
		{"bo", 300},
		{"nobody", 0},
	}
	for _, tt := range tests {
		got, err := store.HighScore(tt.player)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tt.player, err)
		}
		if got != tt.want {
			t.Errorf("HighScore(%q) = %d, expected %d", tt.player, got, tt.want)
		}
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	store.SaveRun(RunResult{Player: "ana", Score: 1, Level: 1, Reason: "quit", CreatedAt: base})
	store.SaveRun(RunResult{Player: "bo", Score: 2, Level: 1, Reason: "quit", CreatedAt: base})
	store.SaveRun(RunResult{Player: "ana", Score: 3, Level: 1, Reason: "quit", CreatedAt: base.Add(time.Hour)})

	runs, err := store.PlayerRuns("ana", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for ana, got %d", len(runs))
	}
	if runs[0].Score != 3 {
		t.Errorf("Most recent run should come first, got score %d", runs[0].Score)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunResult{Player: "a", Score: 100, Level: 1, Reason: "time_expired"})
	store.SaveRun(RunResult{Player: "b", Score: 200, Level: 2, Reason: "time_expired"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	last := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	store.SaveRun(RunResult{Player: "a", Score: 100, Level: 5, Reason: "time_expired",
		Duration: time.Minute, CreatedAt: last.Add(-time.Hour)})
	store.SaveRun(RunResult{Player: "b", Score: 12750, Level: 50, Reason: "max_level_cleared",
		Duration: 2 * time.Hour, CreatedAt: last})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Wins != 1 {
		t.Errorf("Expected 2 runs and 1 win, got %d and %d", stats.Runs, stats.Wins)
	}
	if stats.HighScore != 12750 || stats.BestLevel != 50 {
		t.Errorf("Expected high 12750 at level 50, got %d at %d", stats.HighScore, stats.BestLevel)
	}
	if stats.TotalScore != 12850 || stats.AvgScore != 6425 {
		t.Errorf("Expected total 12850 avg 6425, got %d and %v", stats.TotalScore, stats.AvgScore)
	}
	if stats.PlayTime != 2*time.Hour+time.Minute {
		t.Errorf("Expected play time 2h1m, got %v", stats.PlayTime)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("Expected last played %v, got %v", last, stats.LastPlayed)
	}
}

func TestRunResultWon(t *testing.T) {
	if !(RunResult{Reason: "max_level_cleared"}).Won() {
		t.Error("Clearing the last level should count as a win")
	}
	if (RunResult{Reason: "time_expired"}).Won() {
		t.Error("Running out of time should not count as a win")
	}
}
