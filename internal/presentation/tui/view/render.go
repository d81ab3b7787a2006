// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/podtrends/trenddeck/internal/presentation/tui/components/filterbar"
	"github.com/podtrends/trenddeck/internal/presentation/tui/components/header"
	"github.com/podtrends/trenddeck/internal/presentation/tui/components/layout"
	"github.com/podtrends/trenddeck/internal/presentation/tui/components/login"
	mainview "github.com/podtrends/trenddeck/internal/presentation/tui/components/main"
	"github.com/podtrends/trenddeck/internal/presentation/tui/components/modal"
)

// Props aggregates properties for all UI components.
type Props struct {
	ShowLogin bool
	Login     login.Props
	Header    header.Props
	Filter    filterbar.Props
	Main      mainview.Props
	Modal     modal.Props
	Footer    string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.ShowLogin {
		return login.Render(p.Login)
	}
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	layoutProps := layout.Props{
		Header: header.Render(p.Header),
		Filter: filterbar.Render(p.Filter),
		Main:   mainview.Render(p.Main),
		Footer: p.Footer,
	}

	return layout.Render(layoutProps)
}
