// Package storage provides SQLite-based match history for Pong.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one completed match.
type MatchRecord struct {
	ID         int64
	MatchID    string
	LeftName   string
	RightName  string
	LeftScore  int
	RightScore int
	Winner     string // Empty on a draw
	Duration   time.Duration
	CreatedAt  time.Time
}

// PlayerStats aggregates the recorded matches of one player.
type PlayerStats struct {
	Name   string
	Played int
	Wins   int
	Losses int
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			left_name TEXT NOT NULL,
			right_name TEXT NOT NULL,
			left_score INTEGER NOT NULL DEFAULT 0,
			right_score INTEGER NOT NULL DEFAULT 0,
			winner TEXT,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_left ON matches(left_name);
		CREATE INDEX IF NOT EXISTS idx_matches_right ON matches(right_name);
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

// SaveMatch appends a completed match. A missing MatchID gets a fresh UUID
// and a zero CreatedAt is stamped with the current time.
// Returns the stored record.
func (s *Store) SaveMatch(m MatchRecord) (MatchRecord, error) {
	if m.MatchID == "" {
		m.MatchID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.CreatedAt = m.CreatedAt.UTC().Truncate(time.Second)

	var winner sql.NullString
	if m.Winner != "" {
		winner = sql.NullString{String: m.Winner, Valid: true}
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, left_name, right_name, left_score, right_score, winner, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID,
		m.LeftName,
		m.RightName,
		m.LeftScore,
		m.RightScore,
		winner,
		m.Duration.Milliseconds(),
		m.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return MatchRecord{}, fmt.Errorf("storage: cannot save match: %w", err)
	}

	m.ID, err = res.LastInsertId()
	if err != nil {
		return MatchRecord{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return m, nil
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, left_name, right_name, left_score, right_score,
		        winner, duration_ms, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, left_name, right_name, left_score, right_score,
		        winner, duration_ms, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	return collectMatches(rows)
}

// PlayerMatches retrieves the most recent matches a player took part in
// on either side.
func (s *Store) PlayerMatches(name string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, left_name, right_name, left_score, right_score,
		        winner, duration_ms, created_at
		 FROM matches
		 WHERE left_name = ? OR right_name = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		name, name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player matches: %w", err)
	}
	return collectMatches(rows)
}

// PlayerRecord returns the win/loss record of a player.
func (s *Store) PlayerRecord(name string) (PlayerStats, error) {
	stats := PlayerStats{Name: name}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner IS NOT NULL AND winner <> ? THEN 1 ELSE 0 END), 0)
		 FROM matches
		 WHERE left_name = ? OR right_name = ?`,
		name, name, name, name,
	).Scan(&stats.Played, &stats.Wins, &stats.Losses)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot get player record: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(sc scanner) (MatchRecord, error) {
	var (
		m          MatchRecord
		winner     sql.NullString
		durationMS int64
		createdAt  any
	)

	if err := sc.Scan(
		&m.ID,
		&m.MatchID,
		&m.LeftName,
		&m.RightName,
		&m.LeftScore,
		&m.RightScore,
		&winner,
		&durationMS,
		&createdAt,
	); err != nil {
		return MatchRecord{}, err
	}

	if winner.Valid {
		m.Winner = winner.String
	}
	m.Duration = time.Duration(durationMS) * time.Millisecond

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		m.CreatedAt = v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			m.CreatedAt = parsed
		}
	}

	return m, nil
}

func collectMatches(rows *sql.Rows) ([]MatchRecord, error) {
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}
