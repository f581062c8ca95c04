package storage

import (
	"os"
	"path/filepath"
	"testing"

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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "blockflap", Score: 4}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("blockflap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 4 {
		t.Errorf("Expected high score 4 after reopen, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(Run{
		GameID: "blockflap",
		Player: "alice",
		Score:  12,
		Frames: 930,
		Seed:   42,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if saved.ID == 0 {
		t.Error("Expected ID to be assigned")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Player != "alice" || got.Score != 12 || got.Frames != 930 || got.Seed != 42 {
		t.Errorf("Round-tripped run mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestStoreSaveRunKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	saved, err := store.SaveRun(Run{RunID: id, GameID: "blockflap", Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.RunID != id {
		t.Errorf("RunID = %q, expected %q", saved.RunID, id)
	}

	// run_id is unique
	if _, err := store.SaveRun(Run{RunID: id, GameID: "blockflap", Score: 2}); err == nil {
		t.Error("Expected duplicate RunID to fail")
	}
}

func TestStoreSaveRunRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Score: 5}); err == nil {
		t.Error("Expected error for run without game id")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for unknown run, got %+v", got)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(Run{GameID: "blockflap", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveRun(Run{GameID: "other", Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("blockflap", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "test", Score: (i + 1) * 100})
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"limit 3", 3, 3},
		{"limit above count", 50, 5},
		{"zero uses default", 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := store.TopScores("test", tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tc.want {
				t.Errorf("Expected %d scores, got %d", tc.want, len(scores))
			}
			if scores[0].Score != 500 {
				t.Errorf("Expected top score 500, got %d", scores[0].Score)
			}
		})
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(Run{GameID: "blockflap", Player: "first", Score: 7})
	store.SaveRun(Run{GameID: "blockflap", Player: "second", Score: 7})

	scores, err := store.TopScores("blockflap", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].RunID != first.RunID {
		t.Errorf("Expected earlier run first on ties, got %+v", scores)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		store.SaveRun(Run{GameID: "blockflap", Score: i})
	}

	recent, err := store.RecentRuns("blockflap", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 2 {
		t.Errorf("Unexpected recent runs: %+v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("blockflap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "blockflap", Score: 100})
	store.SaveRun(Run{GameID: "blockflap", Score: 300})
	store.SaveRun(Run{GameID: "blockflap", Score: 200})

	high, err = store.HighScore("blockflap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "blockflap", Score: 100})
	store.SaveRun(Run{GameID: "blockflap", Score: 200})
	store.SaveRun(Run{GameID: "other", Score: 300})

	if err := store.ClearScores("blockflap"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("blockflap", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("blockflap")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "blockflap", Score: 2, Frames: 100})
	store.SaveRun(Run{GameID: "blockflap", Score: 4, Frames: 300})

	stats, err := store.GetGameStats("blockflap")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 4 || stats.AvgScore != 3 || stats.TotalFrames != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

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
