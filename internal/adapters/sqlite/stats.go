package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studytracker/internal/domain"
	"studytracker/internal/ports"

	_ "modernc.org/sqlite"
)

// StatsIndex implements ports.StatsIndex using SQLite. The index holds a
// derived copy of the session collection and exists only for SQL
// aggregation; the JSON store stays the source of truth and the database
// can be deleted at any time.
type StatsIndex struct {
	db     *sql.DB
	dbPath string
}

// Ensure StatsIndex implements the port
var _ ports.StatsIndex = (*StatsIndex)(nil)

// NewStatsIndex creates a new SQLite stats index
func NewStatsIndex() *StatsIndex {
	return &StatsIndex{}
}

// Open initializes the index database under baseDir
func (idx *StatsIndex) Open(baseDir string) error {
	// Expand ~ in path
	if strings.HasPrefix(baseDir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, baseDir[1:])
	}

	idx.dbPath = filepath.Join(baseDir, "index", "stats.db")

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// WAL mode for cheap reopen across runs
	db, err := sql.Open("sqlite", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic TEXT NOT NULL,
			minutes INTEGER NOT NULL,
			date TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_topic ON sessions(lower(topic));
		CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *StatsIndex) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file location
func (idx *StatsIndex) Path() string {
	return idx.dbPath
}

// Rebuild replaces the index content with the given collection, preserving
// insertion order via the rowid sequence.
func (idx *StatsIndex) Rebuild(sessions []domain.Session) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sessions`); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sessions (topic, minutes, date) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range sessions {
		if _, err := stmt.Exec(s.Topic, s.Minutes, s.Date); err != nil {
			return fmt.Errorf("failed to index session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit index: %w", err)
	}
	return nil
}

// TopicTotals aggregates minutes per topic, case-insensitively, in
// first-seen order. The display casing comes from the first occurrence.
func (idx *StatsIndex) TopicTotals() ([]domain.TopicSummary, error) {
	rows, err := idx.db.Query(`
		SELECT s.topic, g.cnt, g.total
		FROM sessions s
		JOIN (
			SELECT lower(topic) AS lt, MIN(id) AS first_id,
			       COUNT(*) AS cnt, SUM(minutes) AS total
			FROM sessions
			GROUP BY lower(topic)
		) g ON s.id = g.first_id
		ORDER BY s.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query topic totals: %w", err)
	}
	defer rows.Close()

	var summaries []domain.TopicSummary
	for rows.Next() {
		var s domain.TopicSummary
		if err := rows.Scan(&s.Topic, &s.Sessions, &s.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan topic total: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DailyTotals aggregates minutes per date in ascending date order
func (idx *StatsIndex) DailyTotals() ([]domain.DailySummary, error) {
	rows, err := idx.db.Query(`
		SELECT date, COUNT(*), SUM(minutes)
		FROM sessions
		GROUP BY date
		ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily totals: %w", err)
	}
	defer rows.Close()

	var summaries []domain.DailySummary
	for rows.Next() {
		var s domain.DailySummary
		if err := rows.Scan(&s.Date, &s.Sessions, &s.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
