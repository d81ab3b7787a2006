// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/podtrends/trenddeck/internal/presentation/tui/components/filterbar"
	"github.com/podtrends/trenddeck/internal/presentation/tui/components/header"
	"github.com/podtrends/trenddeck/internal/presentation/tui/components/login"
	mainview "github.com/podtrends/trenddeck/internal/presentation/tui/components/main"
	"github.com/podtrends/trenddeck/internal/presentation/tui/components/modal"
	"github.com/podtrends/trenddeck/internal/presentation/tui/state"
	"github.com/podtrends/trenddeck/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		ShowLogin: m.state.Screen == state.LoginView,
		Login:     m.buildLoginProps(),
		Header:    m.buildHeaderProps(),
		Filter:    m.buildFilterProps(),
		Main:      m.buildMainProps(),
		Modal:     m.buildModalProps(),
		Footer:    m.buildFooterProps(),
	}
}

func (m *Model) buildLoginProps() login.Props {
	return login.Props{
		Brand:        m.settings.Brand.Name,
		Tagline:      m.settings.Brand.Tagline,
		EmailView:    m.state.EmailInput.View(),
		PasswordView: m.state.PasswordInput.View(),
		Busy:         m.state.AuthBusy,
		SpinnerView:  m.state.Spinner.View(),
		Err:          m.state.AuthErr,
		Width:        m.state.Width,
		Height:       m.state.Height,
		Accent:       lipgloss.Color(m.settings.Theme.Accent),
		Muted:        lipgloss.Color(m.settings.Theme.Muted),
		ErrColor:     lipgloss.Color(m.settings.Theme.Error),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Brand:   m.settings.Brand.Name,
		Tagline: m.settings.Brand.Tagline,
		Email:   m.state.Email,
		Live:    m.state.Live,
		Accent:  lipgloss.Color(m.settings.Theme.Accent),
		Muted:   lipgloss.Color(m.settings.Theme.Muted),
	}
}

func (m *Model) buildFilterProps() filterbar.Props {
	return filterbar.Props{
		MinScore:   m.state.Filter.MinScore,
		Query:      m.state.Filter.Query,
		Searching:  m.state.Searching,
		SearchView: m.state.SearchInput.View(),
		Shown:      len(m.state.ItemList.Items()),
		Total:      len(m.state.Items),
		Muted:      lipgloss.Color(m.settings.Theme.Muted),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	switch {
	case m.state.Loading:
		body = fmt.Sprintf("\n\n   %s Loading trends...", m.state.Spinner.View())
	case m.state.Screen == state.DetailView:
		body = m.state.Viewport.View()
	default:
		body = m.state.ItemList.View()
	}

	if m.state.Err != "" && !m.state.Loading && m.state.Screen == state.DashboardView {
		errLine := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.settings.Theme.Error)).
			Render("Error: " + m.state.Err)
		body = errLine + "\n\n" + body
	}

	return mainview.Props{
		Width:  m.state.ItemList.Width(),
		Height: m.state.ItemList.Height(),
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Screen == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Screen, m.state.Loading, m.state.IngestStatus, helpText)
}
