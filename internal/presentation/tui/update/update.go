// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/podtrends/trenddeck/internal/application/usecase"
	"github.com/podtrends/trenddeck/internal/domain/trend"
	"github.com/podtrends/trenddeck/internal/infrastructure/realtime"
	"github.com/podtrends/trenddeck/internal/presentation/tui/intent"
	"github.com/podtrends/trenddeck/internal/presentation/tui/metrics"
	"github.com/podtrends/trenddeck/internal/presentation/tui/presenter"
	"github.com/podtrends/trenddeck/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Auth        usecase.AuthService
	Trends      usecase.TrendService
	BaseURL     string
	Dial        func(ctx context.Context, apiBase string) (state.EventSource, error)
	OpenBrowser func(string) error
}

// AuthResultMsg is emitted after a login or register attempt.
type AuthResultMsg struct {
	Email string
	Err   error
}

// ItemsLoadedMsg is emitted after fetching the item set.
type ItemsLoadedMsg struct {
	Items []trend.Item
	Err   error
	Epoch int
}

// ItemDetailMsg is emitted after loading one item by id.
type ItemDetailMsg struct {
	ID    int
	Item  *trend.Item
	Err   error
	Epoch int
}

// IngestQueuedMsg is emitted after requesting an ingestion run.
type IngestQueuedMsg struct {
	TaskID string
	Err    error
	Epoch  int
}

// ChannelOpenedMsg is emitted after dialing the push connection.
type ChannelOpenedMsg struct {
	Source state.EventSource
	Err    error
	Epoch  int
}

// ChannelEventMsg carries one decoded push event.
type ChannelEventMsg struct {
	Event realtime.Event
	Epoch int
}

// ChannelClosedMsg is emitted when the push connection stops delivering.
type ChannelClosedMsg struct {
	Epoch int
}

// LoginCmd creates a command to authenticate with the backend.
func LoginCmd(auth usecase.AuthService, email, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := auth.Login(context.Background(), email, password)
		return AuthResultMsg{Email: email, Err: err}
	}
}

// RegisterCmd creates a command to register an account. The service chains
// a login on success, so one message covers the whole flow.
func RegisterCmd(auth usecase.AuthService, email, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := auth.Register(context.Background(), email, password)
		return AuthResultMsg{Email: email, Err: err}
	}
}

// LoadItemsCmd creates a command to fetch the item set for one epoch.
func LoadItemsCmd(trends usecase.TrendService, epoch int) tea.Cmd {
	return func() tea.Msg {
		items, err := trends.Refresh(context.Background())
		return ItemsLoadedMsg{Items: items, Err: err, Epoch: epoch}
	}
}

// LoadDetailCmd creates a command to fetch one item by id.
func LoadDetailCmd(trends usecase.TrendService, id, epoch int) tea.Cmd {
	return func() tea.Msg {
		item, err := trends.Detail(context.Background(), id)
		return ItemDetailMsg{ID: id, Item: item, Err: err, Epoch: epoch}
	}
}

// StartIngestCmd creates a command to queue an ingestion run.
func StartIngestCmd(trends usecase.TrendService, epoch int) tea.Cmd {
	return func() tea.Msg {
		taskID, err := trends.StartIngestion(context.Background())
		return IngestQueuedMsg{TaskID: taskID, Err: err, Epoch: epoch}
	}
}

// OpenChannelCmd creates a command to dial the push connection.
func OpenChannelCmd(dial func(context.Context, string) (state.EventSource, error), apiBase string, epoch int) tea.Cmd {
	return func() tea.Msg {
		src, err := dial(context.Background(), apiBase)
		return ChannelOpenedMsg{Source: src, Err: err, Epoch: epoch}
	}
}

// WaitEventCmd creates a command that blocks until the next push event.
func WaitEventCmd(src state.EventSource, epoch int) tea.Cmd {
	return func() tea.Msg {
		ev, err := src.Next()
		if err != nil {
			return ChannelClosedMsg{Epoch: epoch}
		}
		return ChannelEventMsg{Event: ev, Epoch: epoch}
	}
}

// HandleKeyMsg processes key input based on the current screen.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Screen == state.LoginView {
		return handleLoginView(s, msg, deps)
	}
	if s.Screen == state.QuitView {
		return handleQuitView(s, msg)
	}
	if s.Screen == state.DashboardView && s.Searching {
		return handleSearchInput(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Quit {
		s.Previous = s.Screen
		s.Screen = state.QuitView
		return nil, true
	}

	switch s.Screen {
	case state.DashboardView:
		return handleDashboardIntent(s, parsed, deps)
	case state.DetailView:
		return handleDetailIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
	refreshDetailViewport(s)
}

// HandleAuthResult flips to the dashboard on success.
func HandleAuthResult(s *state.ModelState, msg AuthResultMsg, deps Deps) tea.Cmd {
	s.AuthBusy = false
	if msg.Err != nil {
		s.AuthErr = errorText(msg.Err)
		return nil
	}
	return StartSession(s, msg.Email, deps)
}

// StartSession begins a fresh epoch: the item load and the push connection
// it kicks off are both stamped with it.
func StartSession(s *state.ModelState, email string, deps Deps) tea.Cmd {
	s.Epoch++
	s.Email = email
	s.AuthErr = ""
	s.Err = ""
	s.Screen = state.DashboardView
	s.Loading = true
	return tea.Batch(
		s.Spinner.Tick,
		LoadItemsCmd(deps.Trends, s.Epoch),
		OpenChannelCmd(deps.Dial, deps.BaseURL, s.Epoch),
	)
}

// ResetSession tears the session down completely: persisted token, push
// connection, loaded items, filter, and any in-flight status. The epoch
// bump makes results still in flight land as stale.
func ResetSession(s *state.ModelState, deps Deps) {
	_ = deps.Auth.Logout()
	if s.Channel != nil {
		s.Channel.Close()
		s.Channel = nil
	}
	s.Live = false
	s.Epoch++
	s.Items = nil
	s.Detail = nil
	s.Filter = trend.Filter{}
	s.Err = ""
	s.IngestStatus = ""
	s.TaskID = ""
	s.Loading = false
	s.Searching = false
	s.SearchInput.Reset()
	s.SearchInput.Blur()
	s.EmailInput.Reset()
	s.PasswordInput.Reset()
	s.LoginFocus = 0
	s.EmailInput.Focus()
	s.PasswordInput.Blur()
	s.AuthBusy = false
	s.AuthErr = ""
	s.Email = ""
	s.ItemList.SetItems(nil)
	s.ItemList.ResetSelected()
	s.Screen = state.LoginView
}

// HandleItemsLoaded replaces the item set wholesale. Results stamped with
// an older epoch are dropped.
func HandleItemsLoaded(s *state.ModelState, msg ItemsLoadedMsg) tea.Cmd {
	if msg.Epoch != s.Epoch {
		return nil
	}
	s.Loading = false
	if msg.Err != nil {
		// Auth failures included: the stored token and the dashboard both
		// stay put, the user decides whether to log out and sign in again.
		s.Err = errorText(msg.Err)
		return nil
	}
	s.Err = ""
	s.Items = msg.Items
	applyFilter(s)
	return nil
}

// HandleItemDetail applies a loaded item detail to state.
func HandleItemDetail(s *state.ModelState, msg ItemDetailMsg) {
	if msg.Epoch != s.Epoch {
		return
	}
	s.Loading = false
	if msg.Err != nil {
		s.Err = errorText(msg.Err)
		return
	}
	s.Err = ""
	s.Detail = msg.Item
	s.Screen = state.DetailView
	refreshDetailViewport(s)
}

// HandleIngestQueued records the queued task id for display. The id is
// never polled; progress arrives over the push connection.
func HandleIngestQueued(s *state.ModelState, msg IngestQueuedMsg) {
	if msg.Epoch != s.Epoch {
		return
	}
	if msg.Err != nil {
		s.IngestStatus = ""
		s.Err = errorText(msg.Err)
		return
	}
	s.TaskID = msg.TaskID
	s.IngestStatus = fmt.Sprintf("ingest queued (task %s)", msg.TaskID)
}

// HandleChannelOpened wires the push connection into state. A dial failure
// degrades silently: the dashboard stays usable without push updates.
func HandleChannelOpened(s *state.ModelState, msg ChannelOpenedMsg) tea.Cmd {
	if msg.Epoch != s.Epoch {
		if msg.Source != nil {
			msg.Source.Close()
		}
		return nil
	}
	if msg.Err != nil || msg.Source == nil {
		s.Live = false
		return nil
	}
	s.Channel = msg.Source
	s.Live = true
	return WaitEventCmd(msg.Source, msg.Epoch)
}

// HandleChannelEvent reacts to one push event. A completion event only
// signals that a refetch is due; the item payload always comes from the
// regular list endpoint.
func HandleChannelEvent(s *state.ModelState, msg ChannelEventMsg, deps Deps) tea.Cmd {
	if msg.Epoch != s.Epoch {
		return nil
	}
	switch msg.Event.Type {
	case realtime.EventIngestStarted:
		s.IngestStatus = fmt.Sprintf("ingest running across %d feeds...", msg.Event.Feeds)
		return nil
	case realtime.EventIngestCompleted:
		s.IngestStatus = fmt.Sprintf("ingest done: created=%d updated=%d scored=%d",
			msg.Event.Created, msg.Event.Updated, msg.Event.Scored)
		s.Loading = true
		return tea.Batch(s.Spinner.Tick, LoadItemsCmd(deps.Trends, s.Epoch))
	default:
		return nil
	}
}

// HandleChannelClosed marks the push connection gone. No reconnect is
// attempted; the next session start opens a fresh one.
func HandleChannelClosed(s *state.ModelState, msg ChannelClosedMsg) {
	if msg.Epoch != s.Epoch {
		return
	}
	s.Live = false
	s.Channel = nil
}

func handleLoginView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		toggleLoginFocus(s)
		return textinput.Blink, true
	case "enter":
		return submitAuth(s, deps, false), true
	case "ctrl+r":
		return submitAuth(s, deps, true), true
	case "ctrl+c":
		return tea.Quit, true
	}

	var cmd tea.Cmd
	if s.LoginFocus == 0 {
		s.EmailInput, cmd = s.EmailInput.Update(msg)
	} else {
		s.PasswordInput, cmd = s.PasswordInput.Update(msg)
	}
	return cmd, true
}

func toggleLoginFocus(s *state.ModelState) {
	if s.LoginFocus == 0 {
		s.LoginFocus = 1
		s.EmailInput.Blur()
		s.PasswordInput.Focus()
		return
	}
	s.LoginFocus = 0
	s.PasswordInput.Blur()
	s.EmailInput.Focus()
}

func submitAuth(s *state.ModelState, deps Deps, register bool) tea.Cmd {
	if s.AuthBusy {
		return nil
	}
	email := strings.TrimSpace(s.EmailInput.Value())
	password := s.PasswordInput.Value()
	if email == "" || password == "" {
		s.AuthErr = "email and password are required"
		return nil
	}
	s.AuthBusy = true
	s.AuthErr = ""
	if register {
		return tea.Batch(s.Spinner.Tick, RegisterCmd(deps.Auth, email, password))
	}
	return tea.Batch(s.Spinner.Tick, LoginCmd(deps.Auth, email, password))
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Screen = s.Previous
		return nil, true
	}
	return nil, true
}

func handleSearchInput(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		s.Filter.Query = strings.TrimSpace(s.SearchInput.Value())
		s.Searching = false
		s.SearchInput.Blur()
		applyFilter(s)
		return nil, true
	case "esc":
		s.Searching = false
		s.Filter.Query = ""
		s.SearchInput.Reset()
		s.SearchInput.Blur()
		applyFilter(s)
		return nil, true
	}

	var cmd tea.Cmd
	s.SearchInput, cmd = s.SearchInput.Update(msg)
	s.Filter.Query = strings.TrimSpace(s.SearchInput.Value())
	applyFilter(s)
	return cmd, true
}

func handleDashboardIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		if i, ok := selectedTrendItem(s); ok {
			s.Loading = true
			return tea.Batch(s.Spinner.Tick, LoadDetailCmd(deps.Trends, i.ID, s.Epoch)), true
		}
		return nil, true
	case intent.Refresh:
		s.Loading = true
		return tea.Batch(s.Spinner.Tick, LoadItemsCmd(deps.Trends, s.Epoch)), true
	case intent.Ingest:
		s.IngestStatus = "queueing ingest..."
		return StartIngestCmd(deps.Trends, s.Epoch), true
	case intent.Search:
		s.Searching = true
		s.SearchInput.Focus()
		return textinput.Blink, true
	case intent.ScoreUp:
		s.Filter.MinScore = clampScore(s.Filter.MinScore + metrics.MinScoreStep)
		applyFilter(s)
		return nil, true
	case intent.ScoreDown:
		s.Filter.MinScore = clampScore(s.Filter.MinScore - metrics.MinScoreStep)
		applyFilter(s)
		return nil, true
	case intent.Browse:
		if i, ok := selectedTrendItem(s); ok {
			_ = deps.OpenBrowser(i.Link)
		}
		return nil, true
	case intent.Logout:
		ResetSession(s, deps)
		return textinput.Blink, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

func handleDetailIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		s.Screen = state.DashboardView
		s.Detail = nil
		return nil, true
	case intent.Open, intent.Browse:
		if s.Detail != nil {
			_ = deps.OpenBrowser(s.Detail.URL)
		}
		return nil, true
	case intent.Logout:
		ResetSession(s, deps)
		return textinput.Blink, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

func applyFilter(s *state.ModelState) {
	presenter.ApplyTrendList(&s.ItemList, s.Items, s.Filter)
	UpdateListSizes(s)
}

func selectedTrendItem(s *state.ModelState) (*presenter.Item, bool) {
	if s == nil {
		return nil, false
	}
	item, ok := s.ItemList.SelectedItem().(*presenter.Item)
	if !ok || item == nil {
		return nil, false
	}
	return item, true
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimSpace(err.Error())
}
