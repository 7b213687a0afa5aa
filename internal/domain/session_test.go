package domain

import "testing"

func TestNewSession(t *testing.T) {
	tests := []struct {
		name     string
		topic    string
		minutes  int
		date     string
		wantErr  bool
		errField string
	}{
		{
			name:    "valid session",
			topic:   "Python",
			minutes: 30,
			date:    "2025-01-01",
			wantErr: false,
		},
		{
			name:     "empty topic",
			topic:    "",
			minutes:  30,
			date:     "2025-01-01",
			wantErr:  true,
			errField: "topic",
		},
		{
			name:     "whitespace topic",
			topic:    "   ",
			minutes:  30,
			date:     "2025-01-01",
			wantErr:  true,
			errField: "topic",
		},
		{
			name:     "zero minutes",
			topic:    "Python",
			minutes:  0,
			date:     "2025-01-01",
			wantErr:  true,
			errField: "minutes",
		},
		{
			name:     "negative minutes",
			topic:    "Python",
			minutes:  -5,
			date:     "2025-01-01",
			wantErr:  true,
			errField: "minutes",
		},
		{
			name:     "date missing parts",
			topic:    "Python",
			minutes:  30,
			date:     "2025-01",
			wantErr:  true,
			errField: "date",
		},
		{
			name:     "date too many parts",
			topic:    "Python",
			minutes:  30,
			date:     "2025-01-01-01",
			wantErr:  true,
			errField: "date",
		},
		{
			name:    "date with empty component is shape-valid",
			topic:   "Python",
			minutes: 30,
			date:    "2025--01",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(tt.topic, tt.minutes, tt.date)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for field %q, got nil", tt.errField)
				}
				fieldErr, ok := err.(*FieldError)
				if !ok {
					t.Fatalf("expected *FieldError, got %T", err)
				}
				if fieldErr.Field != tt.errField {
					t.Errorf("expected error on field %q, got %q", tt.errField, fieldErr.Field)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Topic != tt.topic || s.Minutes != tt.minutes || s.Date != tt.date {
				t.Errorf("unexpected session: %+v", s)
			}
		})
	}
}

func TestNewSession_TrimsTopic(t *testing.T) {
	s, err := NewSession("  Python  ", 30, "2025-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Topic != "Python" {
		t.Errorf("expected trimmed topic %q, got %q", "Python", s.Topic)
	}
}

func TestMatchesTopic_IgnoresCase(t *testing.T) {
	s := Session{Topic: "Python", Minutes: 30, Date: "2025-01-01"}

	for _, topic := range []string{"python", "Python", "PYTHON"} {
		if !s.MatchesTopic(topic) {
			t.Errorf("expected %q to match %q", s.Topic, topic)
		}
	}
	if s.MatchesTopic("Py") {
		t.Error("substring should not match")
	}
}

func TestTotalMinutes(t *testing.T) {
	if got := TotalMinutes(nil); got != 0 {
		t.Errorf("expected 0 for empty collection, got %d", got)
	}

	sessions := []Session{
		{Topic: "Python", Minutes: 30, Date: "2025-01-01"},
		{Topic: "Math", Minutes: 45, Date: "2025-01-02"},
		{Topic: "Python", Minutes: 25, Date: "2025-01-03"},
	}
	if got := TotalMinutes(sessions); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestFilterByTopic(t *testing.T) {
	sessions := []Session{
		{Topic: "Python", Minutes: 30, Date: "2025-01-01"},
		{Topic: "Math", Minutes: 45, Date: "2025-01-02"},
		{Topic: "python", Minutes: 25, Date: "2025-01-03"},
	}

	filtered := FilterByTopic(sessions, "PYTHON")
	if len(filtered) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(filtered))
	}
	if filtered[0].Date != "2025-01-01" || filtered[1].Date != "2025-01-03" {
		t.Errorf("filter did not preserve order: %+v", filtered)
	}
	if got := TotalMinutes(filtered); got != 55 {
		t.Errorf("expected 55 minutes for python, got %d", got)
	}
}

func TestSummarizeByTopic(t *testing.T) {
	sessions := []Session{
		{Topic: "Python", Minutes: 30, Date: "2025-01-01"},
		{Topic: "Math", Minutes: 45, Date: "2025-01-02"},
		{Topic: "python", Minutes: 25, Date: "2025-01-03"},
	}

	summaries := SummarizeByTopic(sessions)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(summaries))
	}

	// First-seen order, display-cased by first occurrence
	if summaries[0].Topic != "Python" || summaries[0].Sessions != 2 || summaries[0].Minutes != 55 {
		t.Errorf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].Topic != "Math" || summaries[1].Sessions != 1 || summaries[1].Minutes != 45 {
		t.Errorf("unexpected second summary: %+v", summaries[1])
	}
}

func TestTopics(t *testing.T) {
	sessions := []Session{
		{Topic: "Python", Minutes: 30, Date: "2025-01-01"},
		{Topic: "Math", Minutes: 45, Date: "2025-01-02"},
		{Topic: "PYTHON", Minutes: 25, Date: "2025-01-03"},
	}

	topics := Topics(sessions)
	if len(topics) != 2 || topics[0] != "Python" || topics[1] != "Math" {
		t.Errorf("unexpected topics: %v", topics)
	}
}
