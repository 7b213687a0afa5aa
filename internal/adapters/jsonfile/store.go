package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studytracker/internal/application"
	"studytracker/internal/domain"
)

const fileName = "sessions.json"

// Store implements ports.SessionRepository over a single JSON file.
// The file holds the full collection as an indented array; every save
// overwrites it completely. Writes are not atomic and there is no locking:
// the store assumes a single process at a time.
type Store struct {
	baseDir string
}

// sessionRecord is the wire form of a session in the persisted file
type sessionRecord struct {
	Topic   string `json:"topic"`
	Minutes int    `json:"minutes"`
	Date    string `json:"date"`
}

// NewStore creates a store rooted at baseDir, creating the directory if it
// does not exist. A leading ~ is expanded to the home directory.
func NewStore(baseDir string) (*Store, error) {
	if strings.HasPrefix(baseDir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		baseDir = filepath.Join(home, baseDir[1:])
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Store{baseDir: baseDir}, nil
}

// BaseDir returns the resolved data directory
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the location of the sessions file
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, fileName)
}

// Load reads the full collection. A missing or whitespace-only file yields
// an empty collection; load never creates the file. Content that is present
// but not a valid session array is a fatal parse error.
func (s *Store) Load() ([]domain.Session, error) {
	raw, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path(), err)
	}

	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}

	var records []sessionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", application.ErrCorruptStore, s.Path(), err)
	}

	sessions := make([]domain.Session, 0, len(records))
	for i, r := range records {
		session, err := domain.NewSession(r.Topic, r.Minutes, r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: record %d: %v", application.ErrCorruptStore, s.Path(), i, err)
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// Save overwrites the sessions file with the full collection, indented for
// hand editing.
func (s *Store) Save(sessions []domain.Session) error {
	records := make([]sessionRecord, len(sessions))
	for i, session := range sessions {
		records[i] = sessionRecord{
			Topic:   session.Topic,
			Minutes: session.Minutes,
			Date:    session.Date,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Path(), err)
	}

	return nil
}
