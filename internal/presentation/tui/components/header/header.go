// Package header provides the dashboard header component.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Brand   string
	Tagline string
	Email   string
	Live    bool
	Accent  lipgloss.Color
	Muted   lipgloss.Color
}

// Render renders the header component.
func Render(p Props) string {
	brand := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(p.Brand)

	link := "○ offline"
	if p.Live {
		link = "● live"
	}
	session := link
	if p.Email != "" {
		session = fmt.Sprintf("%s · %s", p.Email, link)
	}

	muted := lipgloss.NewStyle().Foreground(p.Muted)
	return fmt.Sprintf("%s  %s\n%s", brand, muted.Render(session), muted.Render(p.Tagline))
}
