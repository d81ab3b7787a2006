package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/podtrends/trenddeck/internal/presentation/tui/metrics"
	"github.com/podtrends/trenddeck/internal/presentation/tui/state"
)

func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	footerHeight := footerHeight(s)
	availableHeight := clampMin(s.Height-footerHeight-metrics.HeaderLines-metrics.FilterLines, 1)

	listHeight := reservePaginationSpace(s.ItemList, availableHeight)
	s.ItemList.SetSize(s.Width, listHeight)
	s.Viewport.Width = s.Width
	s.Viewport.Height = availableHeight
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(s.Help.View(&s.Keys))
}

func reservePaginationSpace(m list.Model, height int) int {
	if height < 1 || !m.ShowPagination() {
		return height
	}
	if height <= 1 {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
