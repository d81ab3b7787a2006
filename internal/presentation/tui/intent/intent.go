// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/podtrends/trenddeck/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Open
	Back
	Refresh
	Ingest
	Search
	ScoreUp
	ScoreDown
	Browse
	Logout
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	case key.Matches(msg, keys.Ingest):
		return Intent{Type: Ingest}
	case key.Matches(msg, keys.Search):
		return Intent{Type: Search}
	case key.Matches(msg, keys.ScoreUp):
		return Intent{Type: ScoreUp}
	case key.Matches(msg, keys.ScoreDown):
		return Intent{Type: ScoreDown}
	case key.Matches(msg, keys.Browse):
		return Intent{Type: Browse}
	case key.Matches(msg, keys.Logout):
		return Intent{Type: Logout}
	default:
		return Intent{Type: None}
	}
}
