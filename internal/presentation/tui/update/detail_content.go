package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/podtrends/trenddeck/internal/domain/trend"
	"github.com/podtrends/trenddeck/internal/presentation/tui/state"
)

const detailSectionDivider = "----------------------------------------"

func refreshDetailViewport(s *state.ModelState) {
	if s == nil || s.Detail == nil {
		return
	}
	wrapWidth := clampMin(s.Viewport.Width-s.Viewport.Style.GetHorizontalFrameSize(), 1)
	s.Viewport.SetContent(buildDetailContent(s.Detail, wrapWidth))
	s.Viewport.GotoTop()
}

func buildDetailContent(it *trend.Item, wrapWidth int) string {
	if it == nil {
		return ""
	}

	var b strings.Builder
	title := strings.TrimSpace(it.Title)
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(title + "\n")
	b.WriteString(detailSectionDivider + "\n")

	score := "unscored"
	if it.Scored() {
		score = fmt.Sprintf("%d/100", *it.AIScore)
	}
	fmt.Fprintf(&b, "Score: %s\n", score)
	if it.AINiche != "" {
		fmt.Fprintf(&b, "Niche: %s\n", it.AINiche)
	}
	if it.AIStatus != "" {
		fmt.Fprintf(&b, "AI status: %s\n", it.AIStatus)
	}
	if it.AIError != "" {
		fmt.Fprintf(&b, "AI error: %s\n", it.AIError)
	}
	if it.PublishedAt != nil {
		fmt.Fprintf(&b, "Published: %s\n", it.PublishedAt.Format("2006-01-02 15:04"))
	}
	if it.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", it.Source)
	}
	fmt.Fprintf(&b, "Link: %s\n", it.URL)

	summary := strings.TrimSpace(it.Summary)
	if summary == "" {
		summary = "(No summary available. Open it in the browser.)"
	}
	b.WriteString("\n" + detailSectionDivider + "\n")
	b.WriteString(lipgloss.NewStyle().Width(wrapWidth).Render(summary))
	b.WriteString("\n")

	return b.String()
}
