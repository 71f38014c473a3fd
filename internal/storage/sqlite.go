// Package storage records finished sessions in a SQLite file through the
// pure-Go modernc.org/sqlite driver, so the binary builds without cgo.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultPath is where the CLI keeps its scores.
const DefaultPath = "~/.arcade/froggr.db"

// Outcome values stored with each score.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// ErrInvalidOutcome is returned by SaveResult for anything but OutcomeWon
// or OutcomeLost.
var ErrInvalidOutcome = errors.New("storage: invalid outcome")

// Result is a finished session ready to be recorded.
type Result struct {
	GameID  string
	Player  string
	Score   int // final score, lives already applied
	Outcome string
	Goals   int
	Lives   int
}

// ScoreEntry is a stored Result.
type ScoreEntry struct {
	ID int64
	Result
	CreatedAt time.Time
}

// GameStats aggregates every session of one variant.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	TotalGoals int
	LastPlayed time.Time
}

// Store is a handle on the scores database. It is safe for concurrent use;
// the SSH server shares one between sessions.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// migrations run in order; PRAGMA user_version holds how many have been
// applied.
var migrations = []string{
	`CREATE TABLE scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT    NOT NULL,
		player     TEXT    NOT NULL DEFAULT '',
		score      INTEGER NOT NULL,
		outcome    TEXT    NOT NULL CHECK (outcome IN ('won', 'lost')),
		goals      INTEGER NOT NULL DEFAULT 0,
		lives      INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX scores_rank ON scores (game_id, score DESC, id)`,
}

// expandHome resolves a leading "~" to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Open opens the database at path, creating the file, its directories and
// the schema as needed. A leading "~" is the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open %s: %w", path, err)
	}
	// One connection serializes writers; SQLite would lock anyway.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("storage: cannot read schema version: %w", err)
	}
	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		// PRAGMA takes no bind parameters.
		if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, i+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
	}
	return nil
}

// Close closes the database connection. A nil Store is a no-op.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveResult records r and returns its row ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("%w %q", ErrInvalidOutcome, r.Outcome)
	}

	res, err := s.db.Exec(
		`INSERT INTO scores (game_id, player, score, outcome, goals, lives, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Score, r.Outcome, r.Goals, r.Lives, s.now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns the best sessions of gameID, highest score first and
// older sessions first on ties. A limit of zero or less returns all.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, outcome, goals, lives, created_at
		 FROM scores WHERE game_id = ?
		 ORDER BY score DESC, id
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			at int64
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Outcome, &e.Goals, &e.Lives, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot read score: %w", err)
		}
		e.CreatedAt = time.Unix(at, 0)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read scores: %w", err)
	}
	return out, nil
}

// ClearScores deletes every session of gameID and reports how many went.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return res.RowsAffected()
}

const statsSelect = `SELECT game_id,
	COUNT(*),
	COALESCE(SUM(outcome = 'won'), 0),
	COALESCE(MAX(score), 0),
	COALESCE(AVG(score), 0),
	COALESCE(SUM(goals), 0),
	COALESCE(MAX(created_at), 0)
FROM scores`

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(row scanner) (*GameStats, error) {
	var (
		gs   GameStats
		id   sql.NullString
		last int64
	)
	if err := row.Scan(&id, &gs.GamesCount, &gs.Wins, &gs.HighScore, &gs.AvgScore, &gs.TotalGoals, &last); err != nil {
		return nil, err
	}
	gs.GameID = id.String
	if last > 0 {
		gs.LastPlayed = time.Unix(last, 0)
	}
	return &gs, nil
}

// GetGameStats aggregates the sessions of gameID. An unplayed variant
// yields zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	gs, err := scanStats(s.db.QueryRow(statsSelect+` WHERE game_id = ?`, gameID))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	gs.GameID = gameID
	return gs, nil
}

// StatsByGame aggregates every variant that has at least one session.
func (s *Store) StatsByGame() (map[string]*GameStats, error) {
	rows, err := s.db.Query(statsSelect + ` GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		gs, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot read stats: %w", err)
		}
		out[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read stats: %w", err)
	}
	return out, nil
}
