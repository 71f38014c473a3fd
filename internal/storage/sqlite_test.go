package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, r Result) int64 {
	t.Helper()
	id, err := s.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult(%+v) failed: %v", r, err)
	}
	return id
}

func lost(gameID string, score int) Result {
	return Result{GameID: gameID, Score: score, Outcome: OutcomeLost}
}

func TestOpenCreatesNestedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestReopenKeepsScoresAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, Result{GameID: "froggr", Player: "ada", Score: 900, Outcome: OutcomeWon, Goals: 4, Lives: 3})
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	var version int
	if err := store.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil || version != len(migrations) {
		t.Errorf("user_version = %d (%v), want %d", version, err, len(migrations))
	}
	scores, err := store.TopScores("froggr", 10)
	if err != nil || len(scores) != 1 || scores[0].Player != "ada" {
		t.Errorf("TopScores() after reopen = %+v, %v", scores, err)
	}
}

func TestSaveResultRoundTrip(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return at }

	want := Result{GameID: "froggr", Player: "ada", Score: 1200, Outcome: OutcomeWon, Goals: 4, Lives: 3}
	id := save(t, store, want)

	scores, err := store.TopScores("froggr", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.ID != id || got.Result != want {
		t.Errorf("stored %+v, want id %d and %+v", got, id, want)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, at)
	}
}

func TestSaveResultRejectsOutcome(t *testing.T) {
	store := openTestStore(t)
	for _, outcome := range []string{"", "draw", "WON"} {
		_, err := store.SaveResult(Result{GameID: "froggr", Outcome: outcome})
		if !errors.Is(err, ErrInvalidOutcome) {
			t.Errorf("outcome %q: err = %v, want ErrInvalidOutcome", outcome, err)
		}
	}
}

func TestTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)
	save(t, store, Result{GameID: "froggr", Player: "first", Score: 300, Outcome: OutcomeLost})
	save(t, store, lost("froggr", 100))
	save(t, store, lost("froggr", 500))
	save(t, store, Result{GameID: "froggr", Player: "second", Score: 300, Outcome: OutcomeLost})
	save(t, store, lost("froggr_hard", 900))

	tests := []struct {
		name   string
		limit  int
		scores []int
	}{
		{"limited", 2, []int{500, 300}},
		{"exact", 4, []int{500, 300, 300, 100}},
		{"zero means all", 0, []int{500, 300, 300, 100}},
		{"negative means all", -3, []int{500, 300, 300, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.TopScores("froggr", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(got) != len(tt.scores) {
				t.Fatalf("got %d scores, want %d", len(got), len(tt.scores))
			}
			for i, want := range tt.scores {
				if got[i].Score != want {
					t.Errorf("rank %d = %d, want %d", i+1, got[i].Score, want)
				}
			}
		})
	}

	all, _ := store.TopScores("froggr", 0)
	if all[1].Player != "first" || all[2].Player != "second" {
		t.Errorf("ties should keep insertion order, got %q then %q", all[1].Player, all[2].Player)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, lost("froggr", 100))
	save(t, store, lost("froggr", 200))
	save(t, store, lost("froggr_easy", 300))

	n, err := store.ClearScores("froggr")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d rows, want 2", n)
	}
	if scores, _ := store.TopScores("froggr", 0); len(scores) != 0 {
		t.Errorf("%d scores left after clear", len(scores))
	}
	if scores, _ := store.TopScores("froggr_easy", 0); len(scores) != 1 {
		t.Error("other variants should keep their scores")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)
	day := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return day }
	save(t, store, Result{GameID: "froggr", Score: 1200, Outcome: OutcomeWon, Goals: 4})
	store.now = func() time.Time { return day.Add(time.Hour) }
	save(t, store, Result{GameID: "froggr", Score: 300, Outcome: OutcomeLost, Goals: 2})
	save(t, store, lost("froggr_hard", 50))

	stats, err := store.GetGameStats("froggr")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	want := GameStats{
		GameID:     "froggr",
		GamesCount: 2,
		Wins:       1,
		HighScore:  1200,
		AvgScore:   750,
		TotalGoals: 6,
	}
	last := stats.LastPlayed
	stats.LastPlayed = time.Time{}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
	if !last.Equal(day.Add(time.Hour)) {
		t.Errorf("LastPlayed = %v", last)
	}

	empty, err := store.GetGameStats("froggr_easy")
	if err != nil {
		t.Fatalf("GetGameStats() for an unplayed variant failed: %v", err)
	}
	if empty.GameID != "froggr_easy" || empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.StatsByGame()
	if err != nil {
		t.Fatalf("StatsByGame() failed: %v", err)
	}
	if len(all) != 2 || all["froggr_hard"].GamesCount != 1 || all["froggr"].Wins != 1 {
		t.Errorf("StatsByGame() = %+v", all)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := []struct{ in, want string }{
		{"~/.arcade/froggr.db", filepath.Join(home, ".arcade", "froggr.db")},
		{"/tmp/x.db", "/tmp/x.db"},
		{"~other/x.db", "~other/x.db"},
	}
	for _, tt := range tests {
		if got, err := expandHome(tt.in); err != nil || got != tt.want {
			t.Errorf("expandHome(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}
