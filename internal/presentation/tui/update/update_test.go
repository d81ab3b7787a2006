package update

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/podtrends/trenddeck/internal/application/settings"
	"github.com/podtrends/trenddeck/internal/application/usecase"
	"github.com/podtrends/trenddeck/internal/domain/trend"
	"github.com/podtrends/trenddeck/internal/infrastructure/api"
	"github.com/podtrends/trenddeck/internal/infrastructure/realtime"
	"github.com/podtrends/trenddeck/internal/presentation/tui/state"
	listview "github.com/podtrends/trenddeck/internal/presentation/tui/view/list"
)

type stubTrendAPI struct {
	items      []trend.Item
	listErr    error
	listCalls  int
	ingestID   string
	ingestErr  error
	ingestRuns int
}

func (s *stubTrendAPI) ListItems(_ context.Context, _ int) ([]trend.Item, error) {
	s.listCalls++
	return s.items, s.listErr
}

func (s *stubTrendAPI) GetItem(_ context.Context, id int) (*trend.Item, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubTrendAPI) RunIngest(_ context.Context, _ []string, _ int, _ bool) (string, error) {
	s.ingestRuns++
	return s.ingestID, s.ingestErr
}

type stubAuthAPI struct {
	token    string
	loginErr error
}

func (s *stubAuthAPI) Register(context.Context, string, string) error { return nil }

func (s *stubAuthAPI) Login(context.Context, string, string) (string, error) {
	return s.token, s.loginErr
}

type stubSessionRepo struct {
	token   string
	cleared bool
}

func (s *stubSessionRepo) Get() (string, bool) { return s.token, s.token != "" }

func (s *stubSessionRepo) Set(token string) error {
	s.token = token
	return nil
}

func (s *stubSessionRepo) Clear() error {
	s.token = ""
	s.cleared = true
	return nil
}

type stubEventSource struct {
	events []realtime.Event
	closed bool
}

func (s *stubEventSource) Next() (realtime.Event, error) {
	if len(s.events) == 0 {
		return realtime.Event{}, errors.New("closed")
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func (s *stubEventSource) Close() { s.closed = true }

func score(v int) *int { return &v }

func newTestState() *state.ModelState {
	delegate := listview.NewTrendDelegate("48", "241")
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	st := &state.ModelState{
		Screen:        state.DashboardView,
		EmailInput:    textinput.New(),
		PasswordInput: textinput.New(),
		SearchInput:   textinput.New(),
		ItemList:      l,
		Viewport:      viewport.New(0, 0),
		Help:          help.New(),
		Spinner:       spinner.New(),
		Keys:          state.NewKeyMap(settings.KeyMapConfig{}),
		Epoch:         1,
		Email:         "maker@example.com",
	}
	return st
}

func newTestDeps(trendAPI *stubTrendAPI, sessions *stubSessionRepo) Deps {
	if sessions == nil {
		sessions = &stubSessionRepo{token: "tok"}
	}
	return Deps{
		Auth:   usecase.NewAuthService(&stubAuthAPI{token: "tok"}, sessions),
		Trends: usecase.NewTrendService(trendAPI, settings.IngestConfig{RunAI: true}, 200),
		Dial: func(context.Context, string) (state.EventSource, error) {
			return &stubEventSource{}, nil
		},
		OpenBrowser: func(string) error { return nil },
	}
}

// collectMsgs runs a command tree and flattens every produced message.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, collectMsgs(t, sub)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestHandleChannelEvent_CompletedTriggersSingleRefresh(t *testing.T) {
	trendAPI := &stubTrendAPI{items: []trend.Item{{ID: 1, Title: "Retro cat posters", AIScore: score(88)}}}
	deps := newTestDeps(trendAPI, nil)
	st := newTestState()

	cmd := HandleChannelEvent(st, ChannelEventMsg{
		Event: realtime.Event{Type: realtime.EventIngestCompleted, Created: 3, Updated: 1, Scored: 4},
		Epoch: st.Epoch,
	}, deps)

	require.Equal(t, "ingest done: created=3 updated=1 scored=4", st.IngestStatus)
	require.True(t, st.Loading)

	var loaded *ItemsLoadedMsg
	for _, msg := range collectMsgs(t, cmd) {
		if m, ok := msg.(ItemsLoadedMsg); ok {
			require.Nil(t, loaded, "expected a single refresh")
			loaded = &m
		}
	}
	require.NotNil(t, loaded)
	require.Equal(t, 1, trendAPI.listCalls)
	require.Equal(t, st.Epoch, loaded.Epoch)
}

func TestHandleChannelEvent_StartedSetsStatus(t *testing.T) {
	deps := newTestDeps(&stubTrendAPI{}, nil)
	st := newTestState()

	cmd := HandleChannelEvent(st, ChannelEventMsg{
		Event: realtime.Event{Type: realtime.EventIngestStarted, Feeds: 4},
		Epoch: st.Epoch,
	}, deps)

	require.Nil(t, cmd)
	require.Equal(t, "ingest running across 4 feeds...", st.IngestStatus)
}

func TestHandleChannelEvent_StaleEpochIgnored(t *testing.T) {
	trendAPI := &stubTrendAPI{}
	deps := newTestDeps(trendAPI, nil)
	st := newTestState()
	st.Epoch = 3

	cmd := HandleChannelEvent(st, ChannelEventMsg{
		Event: realtime.Event{Type: realtime.EventIngestCompleted, Created: 9},
		Epoch: 2,
	}, deps)

	require.Nil(t, cmd)
	require.Empty(t, st.IngestStatus)
	require.Zero(t, trendAPI.listCalls)
}

func TestResetSession_TearsEverythingDown(t *testing.T) {
	sessions := &stubSessionRepo{token: "tok"}
	deps := newTestDeps(&stubTrendAPI{}, sessions)
	st := newTestState()
	src := &stubEventSource{}
	st.Channel = src
	st.Live = true
	st.Items = []trend.Item{{ID: 1, Title: "x"}}
	st.Filter = trend.Filter{MinScore: 40, Query: "cats"}
	st.IngestStatus = "ingest queued (task abc)"
	st.TaskID = "abc"
	epochBefore := st.Epoch

	ResetSession(st, deps)

	require.True(t, sessions.cleared)
	require.True(t, src.closed)
	require.Nil(t, st.Channel)
	require.False(t, st.Live)
	require.Equal(t, epochBefore+1, st.Epoch)
	require.Nil(t, st.Items)
	require.Equal(t, trend.Filter{}, st.Filter)
	require.Empty(t, st.IngestStatus)
	require.Empty(t, st.TaskID)
	require.Empty(t, st.Email)
	require.Equal(t, state.LoginView, st.Screen)
}

func TestStaleEventAfterLogoutLeavesStateUntouched(t *testing.T) {
	trendAPI := &stubTrendAPI{}
	deps := newTestDeps(trendAPI, nil)
	st := newTestState()
	staleEpoch := st.Epoch

	ResetSession(st, deps)

	cmd := HandleChannelEvent(st, ChannelEventMsg{
		Event: realtime.Event{Type: realtime.EventIngestCompleted, Created: 5},
		Epoch: staleEpoch,
	}, deps)

	require.Nil(t, cmd)
	require.Empty(t, st.IngestStatus)
	require.Equal(t, state.LoginView, st.Screen)
	require.Zero(t, trendAPI.listCalls)
}

func TestHandleItemsLoaded_ReplacesSetWholesale(t *testing.T) {
	st := newTestState()
	st.Items = []trend.Item{{ID: 1, Title: "old"}}

	fresh := []trend.Item{
		{ID: 2, Title: "succulent stickers", AIScore: score(91)},
		{ID: 3, Title: "axolotl mugs", AIScore: score(77)},
	}
	cmd := HandleItemsLoaded(st, ItemsLoadedMsg{Items: fresh, Epoch: st.Epoch})

	require.Nil(t, cmd)
	require.False(t, st.Loading)
	require.Equal(t, fresh, st.Items)
	require.Len(t, st.ItemList.Items(), 2)
}

func TestHandleItemsLoaded_StaleResultDiscarded(t *testing.T) {
	st := newTestState()
	st.Epoch = 2
	st.Items = []trend.Item{{ID: 1, Title: "current"}}

	cmd := HandleItemsLoaded(st, ItemsLoadedMsg{Items: []trend.Item{{ID: 99}}, Epoch: 1})

	require.Nil(t, cmd)
	require.Len(t, st.Items, 1)
	require.Equal(t, "current", st.Items[0].Title)
}

func TestHandleItemsLoaded_AuthErrorSurfacesWithoutLogout(t *testing.T) {
	sessions := &stubSessionRepo{token: "tok"}
	st := newTestState()

	authErr := &api.Error{Kind: api.KindAuth, Status: 401, StatusText: "Unauthorized"}
	HandleItemsLoaded(st, ItemsLoadedMsg{Err: authErr, Epoch: st.Epoch})

	require.Equal(t, state.DashboardView, st.Screen)
	require.False(t, sessions.cleared)
	require.Equal(t, "tok", sessions.token)
	require.Contains(t, st.Err, "401")
	require.Empty(t, st.AuthErr)
}

func TestHandleItemsLoaded_ErrorKeepsItems(t *testing.T) {
	st := newTestState()
	st.Items = []trend.Item{{ID: 1, Title: "kept"}}

	HandleItemsLoaded(st, ItemsLoadedMsg{Err: errors.New("backend unreachable"), Epoch: st.Epoch})

	require.Equal(t, state.DashboardView, st.Screen)
	require.Len(t, st.Items, 1)
	require.Equal(t, "backend unreachable", st.Err)
}

func TestHandleChannelOpened(t *testing.T) {
	st := newTestState()

	t.Run("dial failure degrades silently", func(t *testing.T) {
		cmd := HandleChannelOpened(st, ChannelOpenedMsg{Err: errors.New("refused"), Epoch: st.Epoch})
		require.Nil(t, cmd)
		require.False(t, st.Live)
		require.Empty(t, st.Err)
	})

	t.Run("success arms the event wait", func(t *testing.T) {
		src := &stubEventSource{}
		cmd := HandleChannelOpened(st, ChannelOpenedMsg{Source: src, Epoch: st.Epoch})
		require.NotNil(t, cmd)
		require.True(t, st.Live)
		require.Equal(t, src, st.Channel)
	})

	t.Run("stale open closes the connection", func(t *testing.T) {
		src := &stubEventSource{}
		cmd := HandleChannelOpened(st, ChannelOpenedMsg{Source: src, Epoch: st.Epoch - 1})
		require.Nil(t, cmd)
		require.True(t, src.closed)
	})
}

func TestHandleAuthResult(t *testing.T) {
	t.Run("failure surfaces the error", func(t *testing.T) {
		deps := newTestDeps(&stubTrendAPI{}, nil)
		st := newTestState()
		st.Screen = state.LoginView
		st.AuthBusy = true

		cmd := HandleAuthResult(st, AuthResultMsg{Email: "a@b.c", Err: errors.New("401 Unauthorized - bad credentials")}, deps)

		require.Nil(t, cmd)
		require.False(t, st.AuthBusy)
		require.Equal(t, state.LoginView, st.Screen)
		require.Contains(t, st.AuthErr, "bad credentials")
	})

	t.Run("success starts a fresh epoch", func(t *testing.T) {
		trendAPI := &stubTrendAPI{items: []trend.Item{{ID: 1, Title: "t"}}}
		deps := newTestDeps(trendAPI, nil)
		st := newTestState()
		st.Screen = state.LoginView
		st.AuthBusy = true
		epochBefore := st.Epoch

		cmd := HandleAuthResult(st, AuthResultMsg{Email: "maker@example.com"}, deps)

		require.Equal(t, state.DashboardView, st.Screen)
		require.Equal(t, epochBefore+1, st.Epoch)
		require.True(t, st.Loading)

		var sawItems, sawChannel bool
		for _, msg := range collectMsgs(t, cmd) {
			switch m := msg.(type) {
			case ItemsLoadedMsg:
				sawItems = true
				require.Equal(t, st.Epoch, m.Epoch)
			case ChannelOpenedMsg:
				sawChannel = true
				require.Equal(t, st.Epoch, m.Epoch)
			}
		}
		require.True(t, sawItems)
		require.True(t, sawChannel)
	})
}

func TestHandleIngestQueued(t *testing.T) {
	st := newTestState()

	HandleIngestQueued(st, IngestQueuedMsg{TaskID: "task-42", Epoch: st.Epoch})
	require.Equal(t, "task-42", st.TaskID)
	require.Equal(t, "ingest queued (task task-42)", st.IngestStatus)

	HandleIngestQueued(st, IngestQueuedMsg{TaskID: "stale", Epoch: st.Epoch - 1})
	require.Equal(t, "task-42", st.TaskID)

	HandleIngestQueued(st, IngestQueuedMsg{Err: errors.New("503 Service Unavailable"), Epoch: st.Epoch})
	require.Empty(t, st.IngestStatus)
	require.Equal(t, "503 Service Unavailable", st.Err)
}

func TestHandleChannelClosed(t *testing.T) {
	st := newTestState()
	st.Live = true
	st.Channel = &stubEventSource{}

	HandleChannelClosed(st, ChannelClosedMsg{Epoch: st.Epoch - 1})
	require.True(t, st.Live, "stale close must not touch the live flag")

	HandleChannelClosed(st, ChannelClosedMsg{Epoch: st.Epoch})
	require.False(t, st.Live)
	require.Nil(t, st.Channel)
}

func TestHandleKeyMsg_FilterKeys(t *testing.T) {
	deps := newTestDeps(&stubTrendAPI{}, nil)
	st := newTestState()
	st.Keys = state.NewKeyMap(settings.KeyMapConfig{
		Quit: "q", Search: "/", ScoreUp: "+", ScoreDown: "-",
	})
	st.Items = []trend.Item{
		{ID: 1, Title: "Frog terrarium art", AIScore: score(60)},
		{ID: 2, Title: "Moth tote bags", AIScore: score(30)},
	}

	plus := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}
	for i := 0; i < 10; i++ {
		_, handled := HandleKeyMsg(st, plus, deps)
		require.True(t, handled)
	}
	require.Equal(t, 50, st.Filter.MinScore)
	require.Len(t, st.ItemList.Items(), 1)

	minus := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}}
	for i := 0; i < 30; i++ {
		_, _ = HandleKeyMsg(st, minus, deps)
	}
	require.Equal(t, 0, st.Filter.MinScore, "threshold clamps at zero")
	require.Len(t, st.ItemList.Items(), 2)
}

func TestHandleKeyMsg_SearchFlow(t *testing.T) {
	deps := newTestDeps(&stubTrendAPI{}, nil)
	st := newTestState()
	st.Keys = state.NewKeyMap(settings.KeyMapConfig{Quit: "q", Search: "/"})
	st.Items = []trend.Item{
		{ID: 1, Title: "Frog terrarium art", AIScore: score(60)},
		{ID: 2, Title: "Moth tote bags", AIScore: score(30)},
	}
	applyFilter(st)

	_, handled := HandleKeyMsg(st, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, deps)
	require.True(t, handled)
	require.True(t, st.Searching)

	for _, r := range "moth" {
		_, _ = HandleKeyMsg(st, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, deps)
	}
	require.Len(t, st.ItemList.Items(), 1, "query narrows while typing")

	_, _ = HandleKeyMsg(st, tea.KeyMsg{Type: tea.KeyEnter}, deps)
	require.False(t, st.Searching)
	require.Equal(t, "moth", st.Filter.Query)

	_, _ = HandleKeyMsg(st, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, deps)
	_, _ = HandleKeyMsg(st, tea.KeyMsg{Type: tea.KeyEsc}, deps)
	require.Empty(t, st.Filter.Query, "esc clears the query")
	require.Len(t, st.ItemList.Items(), 2)
}
