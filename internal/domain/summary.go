package domain

import "strings"

// TopicSummary aggregates the sessions logged for a single topic
type TopicSummary struct {
	Topic    string // display-cased from the first occurrence
	Sessions int
	Minutes  int
}

// DailySummary aggregates the sessions logged on a single date
type DailySummary struct {
	Date     string
	Sessions int
	Minutes  int
}

// SummarizeByTopic groups sessions by topic (case-insensitive) in first-seen
// order. Each topic keeps the casing of its first occurrence for display.
func SummarizeByTopic(sessions []Session) []TopicSummary {
	var summaries []TopicSummary
	index := make(map[string]int)

	for _, s := range sessions {
		key := strings.ToLower(s.Topic)
		i, ok := index[key]
		if !ok {
			i = len(summaries)
			index[key] = i
			summaries = append(summaries, TopicSummary{Topic: s.Topic})
		}
		summaries[i].Sessions++
		summaries[i].Minutes += s.Minutes
	}

	return summaries
}

// Topics returns the distinct topics in first-seen order, display-cased by
// first occurrence. Used by the TUI topic filter.
func Topics(sessions []Session) []string {
	summaries := SummarizeByTopic(sessions)
	topics := make([]string, len(summaries))
	for i, s := range summaries {
		topics[i] = s.Topic
	}
	return topics
}
