package sqlite

import (
	"testing"

	"studytracker/internal/domain"
)

func setupIndex(t *testing.T) *StatsIndex {
	t.Helper()

	idx := NewStatsIndex()
	if err := idx.Open(t.TempDir()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func seedSessions() []domain.Session {
	return []domain.Session{
		{Topic: "Python", Minutes: 30, Date: "2025-01-01"},
		{Topic: "Math", Minutes: 45, Date: "2025-01-02"},
		{Topic: "python", Minutes: 25, Date: "2025-01-03"},
		{Topic: "Math", Minutes: 15, Date: "2025-01-02"},
	}
}

func TestTopicTotals_MatchesSummarizeByTopic(t *testing.T) {
	idx := setupIndex(t)
	sessions := seedSessions()

	if err := idx.Rebuild(sessions); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	got, err := idx.TopicTotals()
	if err != nil {
		t.Fatalf("TopicTotals failed: %v", err)
	}

	want := domain.SummarizeByTopic(sessions)
	if len(got) != len(want) {
		t.Fatalf("expected %d topics, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topic %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestDailyTotals(t *testing.T) {
	idx := setupIndex(t)

	if err := idx.Rebuild(seedSessions()); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	got, err := idx.DailyTotals()
	if err != nil {
		t.Fatalf("DailyTotals failed: %v", err)
	}

	want := []domain.DailySummary{
		{Date: "2025-01-01", Sessions: 1, Minutes: 30},
		{Date: "2025-01-02", Sessions: 2, Minutes: 60},
		{Date: "2025-01-03", Sessions: 1, Minutes: 25},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestRebuild_ReplacesPreviousContent(t *testing.T) {
	idx := setupIndex(t)

	if err := idx.Rebuild(seedSessions()); err != nil {
		t.Fatalf("first Rebuild failed: %v", err)
	}
	if err := idx.Rebuild([]domain.Session{
		{Topic: "Go", Minutes: 60, Date: "2025-02-01"},
	}); err != nil {
		t.Fatalf("second Rebuild failed: %v", err)
	}

	totals, err := idx.TopicTotals()
	if err != nil {
		t.Fatalf("TopicTotals failed: %v", err)
	}
	if len(totals) != 1 || totals[0].Topic != "Go" || totals[0].Minutes != 60 {
		t.Errorf("expected only the new collection, got %+v", totals)
	}
}

func TestTopicTotals_EmptyIndex(t *testing.T) {
	idx := setupIndex(t)

	if err := idx.Rebuild(nil); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	totals, err := idx.TopicTotals()
	if err != nil {
		t.Fatalf("TopicTotals failed: %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("expected no totals, got %+v", totals)
	}
}
