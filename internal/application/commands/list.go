package commands

import (
	"context"

	"studytracker/internal/domain"
	"studytracker/internal/ports"
)

// ListCommand returns all sessions in insertion order
type ListCommand struct {
	repo ports.SessionRepository
}

// NewListCommand creates a new ListCommand
func NewListCommand(repo ports.SessionRepository) *ListCommand {
	return &ListCommand{repo: repo}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]domain.Session, error) {
	return c.repo.Load()
}
