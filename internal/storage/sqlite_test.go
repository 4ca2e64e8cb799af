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
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("wezzle", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("wezzle_tutorial", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("wezzle", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	tutorial, err := store.TopScores("wezzle_tutorial", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(tutorial) != 1 {
		t.Errorf("Expected 1 tutorial score, got %d", len(tutorial))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("wezzle", (i+1)*100)
	}

	scores, err := store.TopScores("wezzle", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("wezzle")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("wezzle", 100)
	store.SaveScore("wezzle", 300)
	store.SaveScore("wezzle", 200)

	high, err = store.HighScore("wezzle")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("wezzle")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run, got %+v", best)
	}

	runs := []Run{
		{GameID: "wezzle", Score: 400, Level: 3, Lines: 14, Moves: 20, Seed: 7, Ticks: 3600},
		{GameID: "wezzle", Score: 900, Level: 5, Lines: 30, Moves: 41, Seed: 8, Ticks: 9000},
		{GameID: "wezzle", Score: 900, Level: 4, Lines: 28, Moves: 39, Seed: 9, Ticks: 8000},
		{GameID: "wezzle_tutorial", Score: 50, Level: 1, Lines: 2, Moves: 5, Seed: 1, Ticks: 600},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("wezzle", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Seed != 9 || recent[1].Seed != 8 {
		t.Errorf("RecentRuns = %+v, want seeds 9 then 8", recent)
	}
	if recent[0].Ticks != 8000 || recent[0].Moves != 39 || recent[0].Lines != 28 {
		t.Errorf("run fields not round-tripped: %+v", recent[0])
	}

	top, err := store.TopRuns("wezzle", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 || top[0].Seed != 8 || top[1].Seed != 9 || top[2].Seed != 7 {
		t.Errorf("TopRuns = %+v, want seeds 8, 9, 7", top)
	}

	best, err = store.BestRun("wezzle")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Seed != 8 {
		t.Errorf("BestRun = %+v, want the earlier 900-point run", best)
	}

	high, _ := store.HighScore("wezzle")
	if high != 900 {
		t.Errorf("SaveRun should also record the score, high = %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("wezzle", 100)
	store.SaveRun(Run{GameID: "wezzle", Score: 200})
	store.SaveScore("wezzle_tutorial", 300)

	if err := store.ClearScores("wezzle"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("wezzle", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("wezzle", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	tutorial, _ := store.TopScores("wezzle_tutorial", 10)
	if len(tutorial) != 1 {
		t.Errorf("Expected other mode to keep its score, got %d", len(tutorial))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun(Run{GameID: "wezzle", Score: 999, Level: 2})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	best, err := store2.BestRun("wezzle")
	if err != nil || best == nil {
		t.Fatalf("BestRun() = %v, %v", best, err)
	}
	if best.Score != 999 || best.Level != 2 {
		t.Errorf("Expected persisted run, got %+v", best)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("wezzle")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(Run{GameID: "wezzle", Score: 100, Level: 2, Lines: 8})
	store.SaveRun(Run{GameID: "wezzle", Score: 300, Level: 4, Lines: 20})
	store.SaveScore("wezzle_tutorial", 10)

	stats, err = store.GetGameStats("wezzle")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.MaxLevel != 4 || stats.TotalLines != 28 {
		t.Errorf("run stats = level %d / lines %d, want 4/28", stats.MaxLevel, stats.TotalLines)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["wezzle_tutorial"].HighScore != 10 {
		t.Errorf("all stats = %v", all)
	}
	if w := all["wezzle"]; w == nil || w.MaxLevel != 4 || w.TotalLines != 28 {
		t.Errorf("all stats for wezzle = %+v, want level 4 and 28 lines", w)
	}
}
