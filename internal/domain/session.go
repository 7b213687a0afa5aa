package domain

import (
	"fmt"
	"strings"
)

// Session represents one logged study session
type Session struct {
	Topic   string // what was studied, e.g. "Python"
	Minutes int    // time spent, always > 0
	Date    string // YYYY-MM-DD
}

// FieldError reports which session field failed validation and why
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewSession builds a validated session. The topic is trimmed of surrounding
// whitespace; an invalid field returns a *FieldError and no session.
func NewSession(topic string, minutes int, date string) (Session, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Session{}, &FieldError{
			Field:   "topic",
			Message: "topic must be a non-empty string",
		}
	}

	if minutes <= 0 {
		return Session{}, &FieldError{
			Field:   "minutes",
			Message: "minutes must be a positive integer",
		}
	}

	if !ValidDateShape(date) {
		return Session{}, &FieldError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		}
	}

	return Session{Topic: topic, Minutes: minutes, Date: date}, nil
}

// ValidDateShape checks the YYYY-MM-DD shape: exactly three hyphen-separated
// parts. It does not verify a real calendar date.
func ValidDateShape(date string) bool {
	return len(strings.Split(date, "-")) == 3
}

// MatchesTopic reports whether the session's topic equals the given topic,
// ignoring case. Exact match, not substring.
func (s Session) MatchesTopic(topic string) bool {
	return strings.EqualFold(s.Topic, topic)
}

// TotalMinutes sums the minutes of all sessions
func TotalMinutes(sessions []Session) int {
	total := 0
	for _, s := range sessions {
		total += s.Minutes
	}
	return total
}

// FilterByTopic returns the sessions matching the topic case-insensitively,
// preserving order
func FilterByTopic(sessions []Session, topic string) []Session {
	var filtered []Session
	for _, s := range sessions {
		if s.MatchesTopic(topic) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
