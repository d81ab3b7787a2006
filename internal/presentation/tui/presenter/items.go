// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/podtrends/trenddeck/internal/domain/trend"
)

// Item is a view model for list items.
type Item struct {
	ID        int
	TitleText string
	Niche     string
	Link      string
	Source    string
	Published string
	Score     *int
	Status    trend.AIStatus
	Summary   string
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// NicheLabel returns the AI-assigned niche, if any.
func (i *Item) NicheLabel() string { return i.Niche }

// Scored reports whether the backend has assigned a score.
func (i *Item) Scored() bool { return i.Score != nil }

// ScoreValue returns the numeric score, or -1 for unscored items.
func (i *Item) ScoreValue() int {
	if i.Score == nil {
		return -1
	}
	return *i.Score
}

// ScoreLabel formats the score for the list column. Unscored items show
// a placeholder instead of a number.
func (i *Item) ScoreLabel() string {
	if i.Score == nil {
		return "--"
	}
	return fmt.Sprintf("%d", *i.Score)
}

// Description returns a formatted description for detail display.
func (i *Item) Description() string {
	if i.Published != "" && i.Source != "" {
		return fmt.Sprintf("%s - %s", i.Published, i.Source)
	}
	if i.Published != "" {
		return i.Published
	}
	return i.Source
}

// BuildTrendListItems projects the domain items through the filter into
// list items, ordered by score descending.
func BuildTrendListItems(items []trend.Item, f trend.Filter) []list.Item {
	visible := trend.Visible(items, f)
	result := make([]list.Item, len(visible))
	for idx, it := range visible {
		published := ""
		if it.PublishedAt != nil {
			published = it.PublishedAt.Format("2006-01-02")
		}
		result[idx] = &Item{
			ID:        it.ID,
			TitleText: it.Title,
			Niche:     it.AINiche,
			Link:      it.URL,
			Source:    it.Source,
			Published: published,
			Score:     it.AIScore,
			Status:    it.AIStatus,
			Summary:   it.Summary,
		}
	}
	return result
}

// ApplyTrendList updates the list model with the filtered projection.
func ApplyTrendList(model *list.Model, items []trend.Item, f trend.Filter) {
	model.SetItems(BuildTrendListItems(items, f))
}
