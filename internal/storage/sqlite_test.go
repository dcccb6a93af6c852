package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/riffrun/internal/core"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("riff", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("riff", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("riff", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("riff_endless", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for riff
	scores, err := store.TopScores("riff", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for endless
	endlessScores, err := store.TopScores("riff_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("riff")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("riff", 100)
	store.SaveScore("riff", 300)
	store.SaveScore("riff", 200)

	high, err = store.HighScore("riff")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("riff", 100)
	store.SaveScore("riff", 200)
	store.SaveScore("riff_endless", 300)

	// Clear only riff scores
	err = store.ClearScores("riff")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Riff should be empty
	riffScores, _ := store.TopScores("riff", 10)
	if len(riffScores) != 0 {
		t.Errorf("Expected 0 riff scores after clear, got %d", len(riffScores))
	}

	// Endless should still have scores
	endlessScores, _ := store.TopScores("riff_endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing riff")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveSession(t *testing.T) {
	store := openTestStore(t)

	stats := core.SessionStats{Notes: 30, Score: 7250, Seconds: 94, MaxCombo: 4.5}
	id, err := store.SaveSession("riff", "won", stats)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("SaveSession() id = %q, expected a uuid", id)
	}

	sessions, err := store.RecentSessions("riff", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("RecentSessions() returned %d records, expected 1", len(sessions))
	}

	got := sessions[0]
	if got.ID != id || got.Outcome != "won" || got.GameID != "riff" {
		t.Errorf("RecentSessions()[0] = %+v, expected id %s outcome won", got, id)
	}
	if got.Stats != stats {
		t.Errorf("RecentSessions()[0].Stats = %+v, expected %+v", got.Stats, stats)
	}

	// The score table is updated together with the session
	high, err := store.HighScore("riff")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7250 {
		t.Errorf("HighScore() = %d, expected 7250", high)
	}
}

func TestStoreRecentSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveSession("riff", "lost", core.SessionStats{Notes: i, Score: i * 100, Seconds: i, MaxCombo: 1}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	store.SaveSession("riff_endless", "lost", core.SessionStats{Score: 1})

	sessions, err := store.RecentSessions("riff", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("RecentSessions() returned %d records, expected 3", len(sessions))
	}
	for i, want := range []int{5, 4, 3} {
		if sessions[i].Stats.Notes != want {
			t.Errorf("RecentSessions()[%d].Notes = %d, expected %d", i, sessions[i].Stats.Notes, want)
		}
	}
}

func TestStoreBestSession(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSession("riff")
	if err != nil {
		t.Fatalf("BestSession() failed: %v", err)
	}
	if best != nil {
		t.Errorf("BestSession() on empty table = %+v, expected nil", best)
	}

	store.SaveSession("riff", "lost", core.SessionStats{Notes: 4, Score: 600})
	store.SaveSession("riff", "won", core.SessionStats{Notes: 30, Score: 9100, MaxCombo: 5})
	store.SaveSession("riff", "lost", core.SessionStats{Notes: 12, Score: 2400})

	best, err = store.BestSession("riff")
	if err != nil {
		t.Fatalf("BestSession() failed: %v", err)
	}
	if best == nil || best.Stats.Score != 9100 || best.Outcome != "won" {
		t.Errorf("BestSession() = %+v, expected the 9100 win", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("riff", "won", core.SessionStats{Notes: 30, Score: 8000, MaxCombo: 4.5})
	store.SaveSession("riff", "lost", core.SessionStats{Notes: 10, Score: 2000, MaxCombo: 3})

	stats, err := store.GetGameStats("riff")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, expected 1", stats.Wins)
	}
	if stats.HighScore != 8000 {
		t.Errorf("HighScore = %d, expected 8000", stats.HighScore)
	}
	if stats.AvgScore != 5000 {
		t.Errorf("AvgScore = %v, expected 5000", stats.AvgScore)
	}
	if stats.TotalNotes != 40 {
		t.Errorf("TotalNotes = %d, expected 40", stats.TotalNotes)
	}
	if stats.BestCombo != 4.5 {
		t.Errorf("BestCombo = %v, expected 4.5", stats.BestCombo)
	}

	empty, err := store.GetGameStats("riff_endless")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() on empty game = %+v", empty)
	}
}

func TestStoreClearScoresRemovesSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("riff", "lost", core.SessionStats{Score: 100})
	if err := store.ClearScores("riff"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	sessions, _ := store.RecentSessions("riff", 10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}
}
