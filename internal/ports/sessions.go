package ports

import "studytracker/internal/domain"

// SessionRepository defines the interface for durable session storage.
// Implementations hold the full ordered collection; callers follow a
// load, mutate in memory, save cycle with no caching between operations.
type SessionRepository interface {
	// Load returns the full collection in insertion order. A missing or
	// empty store yields an empty collection, not an error.
	Load() ([]domain.Session, error)

	// Save overwrites the store with the full collection.
	Save(sessions []domain.Session) error

	// Path returns the location of the underlying store, for display.
	Path() string
}
