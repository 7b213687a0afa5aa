package commands

import (
	"context"
	"fmt"

	"studytracker/internal/domain"
	"studytracker/internal/ports"
)

// ReportResult contains aggregated minutes, optionally scoped to a topic
type ReportResult struct {
	Topic    string // empty when unfiltered
	Sessions int
	Minutes  int
}

// Message formats the result the way the CLI prints it
func (r *ReportResult) Message() string {
	if r.Topic != "" {
		return fmt.Sprintf("Total for '%s': %d min", r.Topic, r.Minutes)
	}
	return fmt.Sprintf("Total minutes: %d", r.Minutes)
}

// ReportCommand sums minutes over the collection, optionally filtered by
// topic (exact match, case-insensitive)
type ReportCommand struct {
	repo  ports.SessionRepository
	Topic string // empty means no filter
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(repo ports.SessionRepository, topic string) *ReportCommand {
	return &ReportCommand{
		repo:  repo,
		Topic: topic,
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) (*ReportResult, error) {
	sessions, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	if c.Topic != "" {
		sessions = domain.FilterByTopic(sessions, c.Topic)
	}

	return &ReportResult{
		Topic:    c.Topic,
		Sessions: len(sessions),
		Minutes:  domain.TotalMinutes(sessions),
	}, nil
}

// SummaryCommand aggregates sessions per topic in first-seen order
type SummaryCommand struct {
	repo ports.SessionRepository
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(repo ports.SessionRepository) *SummaryCommand {
	return &SummaryCommand{repo: repo}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context) ([]domain.TopicSummary, error) {
	sessions, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	return domain.SummarizeByTopic(sessions), nil
}
