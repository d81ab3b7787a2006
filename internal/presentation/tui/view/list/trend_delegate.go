// Package listview provides list item delegates for the view layer.
package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HighScoreFloor is the lowest score rendered with the high-score color.
const HighScoreFloor = 70

// TrendItem interface for items that can be rendered by TrendDelegate.
type TrendItem interface {
	list.Item
	Title() string
	NicheLabel() string
	ScoreLabel() string
	ScoreValue() int
	Scored() bool
}

// TrendDelegate handles rendering of trend items.
type TrendDelegate struct {
	Styles    list.DefaultItemStyles
	HighColor lipgloss.Color
	LowColor  lipgloss.Color
}

// NewTrendDelegate creates a new TrendDelegate.
func NewTrendDelegate(high, low lipgloss.Color) *TrendDelegate {
	return &TrendDelegate{
		Styles:    withItemPadding(list.NewDefaultItemStyles()),
		HighColor: high,
		LowColor:  low,
	}
}

// Height returns the height of the item.
func (d *TrendDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *TrendDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *TrendDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item as one line: score column, title, niche tag.
func (d *TrendDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(TrendItem)
	if !ok {
		return
	}

	title := i.Title()
	if niche := i.NicheLabel(); niche != "" {
		title = fmt.Sprintf("%s [%s]", title, niche)
	}

	score := fmt.Sprintf("%3s", i.ScoreLabel())
	scoreColor := d.LowColor
	if i.ScoreValue() >= HighScoreFloor {
		scoreColor = d.HighColor
	}
	score = lipgloss.NewStyle().Foreground(scoreColor).Render(score)

	line := fmt.Sprintf("%s  %s", score, title)
	style := itemStyle(d.Styles, m, index)
	line = truncateItemText(m, style, line)

	if !i.Scored() {
		line = lipgloss.NewStyle().Faint(true).Render(line)
	}

	renderItemText(w, style, line)
}
