// Package login provides the sign-in form component.
package login

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the login form component.
type Props struct {
	Brand        string
	Tagline      string
	EmailView    string
	PasswordView string
	Busy         bool
	SpinnerView  string
	Err          string
	Width        int
	Height       int
	Accent       lipgloss.Color
	Muted        lipgloss.Color
	ErrColor     lipgloss.Color
}

// Render renders the login form centered in the terminal.
func Render(p Props) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(p.Brand))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render(p.Tagline))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Email\n%s\n\nPassword\n%s\n", p.EmailView, p.PasswordView))

	switch {
	case p.Busy:
		b.WriteString(fmt.Sprintf("\n%s signing in...", p.SpinnerView))
	case p.Err != "":
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(p.ErrColor).Render(p.Err))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render("enter: sign in · ctrl+r: register · tab: next field"))

	box := lipgloss.NewStyle().
		Width(48).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2).
		Render(b.String())

	if p.Width <= 0 || p.Height <= 0 {
		return box
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, box)
}
