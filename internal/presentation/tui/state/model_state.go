// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/podtrends/trenddeck/internal/domain/trend"
	"github.com/podtrends/trenddeck/internal/infrastructure/realtime"
)

// EventSource is a push connection delivering ingestion lifecycle events.
type EventSource interface {
	Next() (realtime.Event, error)
	Close()
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Screen   Screen
	Previous Screen

	EmailInput    textinput.Model
	PasswordInput textinput.Model
	LoginFocus    int
	AuthBusy      bool
	AuthErr       string
	Email         string

	ItemList    list.Model
	SearchInput textinput.Model
	Searching   bool
	Items       []trend.Item
	Filter      trend.Filter

	Detail   *trend.Item
	Viewport viewport.Model

	Help    help.Model
	Spinner spinner.Model
	Loading bool
	Keys    KeyMap

	Width  int
	Height int

	Err          string
	IngestStatus string
	TaskID       string

	// Epoch counts session-presence transitions. Results and push events
	// stamped with an older epoch belong to a torn-down session and are
	// discarded on arrival.
	Epoch   int
	Channel EventSource
	Live    bool
}
