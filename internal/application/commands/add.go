package commands

import (
	"context"
	"fmt"
	"time"

	"studytracker/internal/domain"
	"studytracker/internal/ports"
)

// DateLayout is the persisted date format
const DateLayout = "2006-01-02"

// AddResult contains the result of adding a session
type AddResult struct {
	Session domain.Session
	Message string
}

// AddCommand records a new study session
type AddCommand struct {
	repo    ports.SessionRepository
	Topic   string
	Minutes int
	Date    string // empty means today
}

// NewAddCommand creates a new AddCommand
func NewAddCommand(repo ports.SessionRepository, topic string, minutes int, date string) *AddCommand {
	return &AddCommand{
		repo:    repo,
		Topic:   topic,
		Minutes: minutes,
		Date:    date,
	}
}

// session resolves the date default and builds the validated record
func (c *AddCommand) session() (domain.Session, error) {
	date := c.Date
	if date == "" {
		date = time.Now().Format(DateLayout)
	}
	return domain.NewSession(c.Topic, c.Minutes, date)
}

// Validate checks the session fields without touching storage
func (c *AddCommand) Validate() error {
	_, err := c.session()
	return err
}

// Execute runs the add command: validate, load, append, save. The store is
// never written when validation fails.
func (c *AddCommand) Execute(ctx context.Context) (*AddResult, error) {
	session, err := c.session()
	if err != nil {
		return nil, err
	}

	sessions, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	sessions = append(sessions, session)
	if err := c.repo.Save(sessions); err != nil {
		return nil, fmt.Errorf("failed to save sessions: %w", err)
	}

	return &AddResult{
		Session: session,
		Message: fmt.Sprintf("Added: %s for %d min on %s", session.Topic, session.Minutes, session.Date),
	}, nil
}
