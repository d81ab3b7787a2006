// Package filterbar provides the score threshold and search query bar.
package filterbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the filter bar component.
type Props struct {
	MinScore   int
	Query      string
	Searching  bool
	SearchView string
	Shown      int
	Total      int
	Muted      lipgloss.Color
}

// Render renders the filter bar component.
func Render(p Props) string {
	query := p.Query
	if p.Searching {
		query = p.SearchView
	} else if query == "" {
		query = "(none)"
	}
	line := fmt.Sprintf("min score %d · search %s · %d/%d items", p.MinScore, query, p.Shown, p.Total)
	return lipgloss.NewStyle().Foreground(p.Muted).Render(line)
}
