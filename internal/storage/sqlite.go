// Package storage provides SQLite-based persistence for session results and
// high scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/riffrun/internal/core"
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// SessionRecord is the persisted result of one finished session.
type SessionRecord struct {
	ID        string // uuid
	GameID    string
	Outcome   string // "won" or "lost"
	Stats     core.SessionStats
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			notes INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			seconds INTEGER NOT NULL DEFAULT 0,
			max_combo REAL NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and session records for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// SaveSession records a finished session together with its score entry.
// Both rows are written in one transaction. Returns the new session id.
func (s *Store) SaveSession(gameID, outcome string, stats core.SessionStats) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sessions (id, game_id, outcome, notes, score, seconds, max_combo)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, gameID, outcome, stats.Notes, stats.Score, stats.Seconds, stats.MaxCombo,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, stats.Score); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return id, nil
}

const sessionColumns = `id, game_id, outcome, notes, score, seconds, max_combo, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (SessionRecord, error) {
	var r SessionRecord
	var createdAt any
	err := row.Scan(&r.ID, &r.GameID, &r.Outcome,
		&r.Stats.Notes, &r.Stats.Score, &r.Stats.Seconds, &r.Stats.MaxCombo, &createdAt)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RecentSessions returns the latest sessions of a game, newest first.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		r, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestSession returns the highest-scoring session of a game.
// Returns nil without error when the game has no sessions.
func (s *Store) BestSession(gameID string) (*SessionRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY score DESC, notes DESC, rowid ASC
		 LIMIT 1`,
		gameID,
	)

	r, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best session: %w", err)
	}
	return &r, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	TotalNotes int64
	BestCombo  float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated session statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(notes), 0), COALESCE(MAX(max_combo), 0),
		        MAX(created_at)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore,
		&stats.TotalNotes, &stats.BestCombo, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
