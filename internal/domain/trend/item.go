// Package trend defines the trend item model and the derived view projection.
package trend

import "time"

// AIStatus reports where an item sits in the backend scoring pipeline.
type AIStatus string

const (
	AIStatusPending AIStatus = "pending"
	AIStatusScored  AIStatus = "scored"
	AIStatusFailed  AIStatus = "failed"
)

// Item represents one scored trend entry as served by the backend.
// Items are immutable on the client; reloads replace the set wholesale.
type Item struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Source      string     `json:"source,omitempty"`
	SourceURL   string     `json:"source_url,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	AIScore     *int       `json:"ai_score_0_100,omitempty"`
	AINiche     string     `json:"ai_niche,omitempty"`
	AIStatus    AIStatus   `json:"ai_status,omitempty"`
	AIError     string     `json:"ai_error,omitempty"`
}

// FilterScore is the score used for threshold filtering. Absent counts as 0.
func (it Item) FilterScore() int {
	if it.AIScore == nil {
		return 0
	}
	return *it.AIScore
}

// SortScore is the score used for ordering. Absent sorts below every real
// score, so it compares as -1.
func (it Item) SortScore() int {
	if it.AIScore == nil {
		return -1
	}
	return *it.AIScore
}

// Scored reports whether the backend has assigned an AI score.
func (it Item) Scored() bool {
	return it.AIScore != nil
}
