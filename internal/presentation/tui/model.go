package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/podtrends/trenddeck/internal/application/settings"
	"github.com/podtrends/trenddeck/internal/application/usecase"
	"github.com/podtrends/trenddeck/internal/infrastructure/realtime"
	"github.com/podtrends/trenddeck/internal/presentation/tui/state"
	"github.com/podtrends/trenddeck/internal/presentation/tui/update"
	"github.com/podtrends/trenddeck/internal/presentation/tui/view"
	listview "github.com/podtrends/trenddeck/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	auth     usecase.AuthService
	trends   usecase.TrendService
	state    *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, auth usecase.AuthService, trends usecase.TrendService) *Model {
	return &Model{
		settings: cfg,
		auth:     auth,
		trends:   trends,
		state:    newModelState(cfg),
	}
}

// Init initializes the model. A token restored from the credential store
// skips the login screen and starts the session immediately.
func (m *Model) Init() tea.Cmd {
	if _, ok := m.auth.Token(); ok {
		return update.StartSession(m.state, "", m.deps())
	}
	return tea.Batch(m.state.Spinner.Tick, textinput.Blink)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.AuthResultMsg:
		cmds = append(cmds, update.HandleAuthResult(m.state, msg, m.deps()))
	case update.ItemsLoadedMsg:
		cmds = append(cmds, update.HandleItemsLoaded(m.state, msg))
	case update.ItemDetailMsg:
		update.HandleItemDetail(m.state, msg)
	case update.IngestQueuedMsg:
		update.HandleIngestQueued(m.state, msg)
	case update.ChannelOpenedMsg:
		cmds = append(cmds, update.HandleChannelOpened(m.state, msg))
	case update.ChannelEventMsg:
		cmds = append(cmds, update.HandleChannelEvent(m.state, msg, m.deps()))
		if m.state.Channel != nil && msg.Epoch == m.state.Epoch {
			cmds = append(cmds, update.WaitEventCmd(m.state.Channel, msg.Epoch))
		}
	case update.ChannelClosedMsg:
		update.HandleChannelClosed(m.state, msg)
	}

	if m.state.Loading || m.state.AuthBusy {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Screen {
	case state.DashboardView:
		if !m.state.Searching {
			m.state.ItemList, cmd = m.state.ItemList.Update(msg)
			cmds = append(cmds, cmd)
		}
	case state.DetailView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Auth:        m.auth,
		Trends:      m.trends,
		BaseURL:     m.settings.APIBaseURL,
		Dial:        dialEventSource,
		OpenBrowser: openBrowser,
	}
}

func dialEventSource(ctx context.Context, apiBase string) (state.EventSource, error) {
	ch, err := realtime.Dial(ctx, apiBase)
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Screen:        state.LoginView,
		EmailInput:    newEmailInput(),
		PasswordInput: newPasswordInput(),
		SearchInput:   newSearchInput(),
		ItemList:      newTrendList(cfg),
		Viewport:      newViewport(),
		Help:          help.New(),
		Spinner:       newSpinner(cfg),
		Keys:          state.NewKeyMap(cfg.KeyMap),
	}

	st.EmailInput.Focus()
	st.ItemList.KeyMap.PrevPage = st.Keys.UpPage
	st.ItemList.KeyMap.NextPage = st.Keys.DownPage

	return st
}

func newTrendList(cfg settings.Settings) list.Model {
	delegate := listview.NewTrendDelegate(
		lipgloss.Color(cfg.Theme.ScoreHigh),
		lipgloss.Color(cfg.Theme.ScoreLow),
	)
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	// Filtering goes through the query bar, not the list's own filter.
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newEmailInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "you@example.com"
	ti.CharLimit = 100
	ti.Width = 40
	return ti
}

func newPasswordInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.CharLimit = 100
	ti.Width = 40
	return ti
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "title or niche"
	ti.CharLimit = 80
	ti.Width = 30
	return ti
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}
