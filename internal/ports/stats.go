package ports

import "studytracker/internal/domain"

// StatsIndex provides SQL-backed aggregation over the session collection.
// The index is derived data: it is rebuilt from the repository on demand and
// is never the source of truth.
type StatsIndex interface {
	// Lifecycle
	Open(baseDir string) error
	Close() error

	// Rebuild replaces the index content with the given collection.
	Rebuild(sessions []domain.Session) error

	// Aggregations
	TopicTotals() ([]domain.TopicSummary, error)
	DailyTotals() ([]domain.DailySummary, error)
}
