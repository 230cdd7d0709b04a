package tui

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/itchan-dev/forum/internal/controller"
	"github.com/itchan-dev/forum/internal/devserver"
	"github.com/itchan-dev/forum/internal/gateway"
	"github.com/itchan-dev/forum/internal/poller"
	"github.com/itchan-dev/forum/internal/state"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (model, *devserver.Store) {
	t.Helper()
	srv := devserver.New("", []string{"*"}, "alice", "bob")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	app := state.NewApp()
	ctrl := controller.New(gateway.New(ts.URL+"/api"), app, "📌")
	sched := poller.New(ctrl, app.Session, time.Hour)
	t.Cleanup(sched.Stop)

	return newModel(context.Background(), ctrl, sched), srv.Store
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(t *testing.T, m model, k tea.KeyType) (model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

// finish runs a workflow command synchronously and feeds its result back.
func finish(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(resultMsg)
	require.True(t, ok, "expected a workflow result, got %T", msg)
	m, _ = update(t, m, msg)
	return m
}

func loggedIn(t *testing.T, m model, user string) model {
	t.Helper()
	m = typeText(t, m, user)
	m, cmd := press(t, m, tea.KeyEnter)
	m = finish(t, m, cmd)
	require.Equal(t, state.ViewForum, m.app.Session.ActiveView())
	return m
}

func seed(t *testing.T, store *devserver.Store, user, title string) domain.Thread {
	t.Helper()
	th, err := store.CreateThread(domain.Thread{Title: title, User: user}, domain.Post{User: user, Text: "first"})
	require.NoError(t, err)
	return th
}

func TestLoginView(t *testing.T) {
	t.Run("empty username shows a notice", func(t *testing.T) {
		m, _ := newTestModel(t)
		m, cmd := press(t, m, tea.KeyEnter)
		m = finish(t, m, cmd)

		assert.Equal(t, state.ViewLogin, m.app.Session.ActiveView())
		assert.Equal(t, "Please enter your username!", m.notice)
		assert.Contains(t, m.View(), "Please enter your username!")
		assert.False(t, m.sched.Running())
	})

	t.Run("unknown user", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = typeText(t, m, "mallory")
		m, cmd := press(t, m, tea.KeyEnter)
		m = finish(t, m, cmd)

		assert.Equal(t, "Username not found!", m.notice)
		assert.Equal(t, state.ViewLogin, m.app.Session.ActiveView())
	})

	t.Run("known user switches to the forum", func(t *testing.T) {
		m, store := newTestModel(t)
		seed(t, store, "alice", "Hello")

		m = loggedIn(t, m, "alice")

		assert.Empty(t, m.notice)
		assert.True(t, m.sched.Running())
		assert.Len(t, m.threads.Items(), 1)
		assert.Contains(t, m.View(), "Logged in as alice")
	})
}

func TestOpenThreadAndReply(t *testing.T) {
	m, store := newTestModel(t)
	th := seed(t, store, "alice", "Hello")
	m = loggedIn(t, m, "alice")

	m, cmd := press(t, m, tea.KeyEnter)
	m = finish(t, m, cmd)

	require.True(t, m.app.Detail.Visible())
	id, _ := m.app.Detail.CurrentThread()
	assert.Equal(t, th.Id, id)
	assert.Contains(t, m.View(), "Hello")

	m, _ = press(t, m, tea.KeyTab)
	require.Equal(t, focusCompose, m.focus)
	m = typeText(t, m, "Hi there")
	m, cmd = press(t, m, tea.KeyEnter)
	m = finish(t, m, cmd)

	assert.Empty(t, m.notice)
	assert.Empty(t, m.compose.Value())
	assert.Equal(t, []domain.Post{
		{User: "alice", Text: "first"},
		{User: "alice", Text: "Hi there"},
	}, m.app.Detail.Posts())
}

func TestEmptyReplyKeepsFocus(t *testing.T) {
	m, store := newTestModel(t)
	seed(t, store, "alice", "Hello")
	m = loggedIn(t, m, "alice")
	m, cmd := press(t, m, tea.KeyEnter)
	m = finish(t, m, cmd)

	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "   ")
	m, cmd = press(t, m, tea.KeyEnter)
	m = finish(t, m, cmd)

	assert.Equal(t, "Post content cannot be empty!", m.notice)
	assert.Equal(t, focusCompose, m.focus)
	assert.Len(t, m.app.Detail.Posts(), 1)
}

func TestCreateThreadPrompts(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m, "alice")

	m = typeText(t, m, "n")
	require.Equal(t, promptTitle, m.prompt)
	assert.Contains(t, m.View(), "Enter thread title")

	m = typeText(t, m, "Hello")
	m, _ = press(t, m, tea.KeyEnter)
	require.Equal(t, promptText, m.prompt)
	m = typeText(t, m, "First post")
	m, cmd := press(t, m, tea.KeyEnter)
	m = finish(t, m, cmd)

	assert.Equal(t, promptNone, m.prompt)
	assert.Empty(t, m.notice)
	require.Len(t, store.Threads(), 1)
	require.Len(t, m.threads.Items(), 1)
	assert.Equal(t, "Hello", m.threads.Items()[0].(threadItem).thread.Title)
}

func TestCreateThreadMissingField(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m, "alice")

	m = typeText(t, m, "n")
	m, _ = press(t, m, tea.KeyEnter) // empty title
	m = typeText(t, m, "text only")
	m, cmd := press(t, m, tea.KeyEnter)
	m = finish(t, m, cmd)

	assert.Equal(t, "Both fields are required!", m.notice)
	assert.Empty(t, store.Threads())
}

func TestDeleteThread(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		m, store := newTestModel(t)
		seed(t, store, "alice", "Doomed")
		m = loggedIn(t, m, "alice")
		m, cmd := press(t, m, tea.KeyEnter)
		m = finish(t, m, cmd)

		m = typeText(t, m, "d")
		require.Equal(t, promptDelete, m.prompt)
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
		m = finish(t, m, cmd)

		assert.False(t, m.app.Detail.Visible())
		assert.Empty(t, m.threads.Items())
		assert.Empty(t, store.Threads())
	})

	t.Run("declined", func(t *testing.T) {
		m, store := newTestModel(t)
		seed(t, store, "alice", "Safe")
		m = loggedIn(t, m, "alice")
		m, cmd := press(t, m, tea.KeyEnter)
		m = finish(t, m, cmd)

		m = typeText(t, m, "d")
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

		assert.Nil(t, cmd)
		assert.Equal(t, promptNone, m.prompt)
		assert.True(t, m.app.Detail.Visible())
		assert.Len(t, store.Threads(), 1)
	})
}

func TestCloseKeepsSelection(t *testing.T) {
	m, store := newTestModel(t)
	th := seed(t, store, "alice", "Hello")
	m = loggedIn(t, m, "alice")
	m, cmd := press(t, m, tea.KeyEnter)
	m = finish(t, m, cmd)

	m, _ = press(t, m, tea.KeyEsc)

	assert.False(t, m.app.Detail.Visible())
	id, ok := m.app.Detail.CurrentThread()
	assert.True(t, ok)
	assert.Equal(t, th.Id, id)
}

func TestPollChangeUpdatesList(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m, "alice")
	require.Empty(t, m.threads.Items())

	seed(t, store, "bob", "From bob")
	require.NoError(t, m.ctrl.RefreshCatalog(context.Background()))
	m, cmd := update(t, m, changeMsg{change: state.ChangeCatalog})

	assert.NotNil(t, cmd, "keeps listening for changes")
	require.Len(t, m.threads.Items(), 1)
	assert.Equal(t, "From bob", m.threads.Items()[0].(threadItem).thread.Title)
}

func TestLogout(t *testing.T) {
	m, _ := newTestModel(t)
	m = loggedIn(t, m, "alice")
	require.True(t, m.sched.Running())

	m = typeText(t, m, "L")

	assert.Equal(t, state.ViewLogin, m.app.Session.ActiveView())
	assert.False(t, m.sched.Running())
	assert.Contains(t, m.View(), "Username:")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m = loggedIn(t, m, "alice")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.sched.Running())
}

func TestThreadItem(t *testing.T) {
	it := threadItem{thread: domain.Thread{Id: 3, Title: "Hello", Icon: "📌", User: "alice"}}
	assert.Equal(t, "📌 Hello", it.Title())
	assert.Equal(t, "#3 by alice", it.Description())
	assert.Equal(t, "Hello", it.FilterValue())

	bare := threadItem{thread: domain.Thread{Id: 4, Title: "Bare"}}
	assert.Equal(t, "Bare", bare.Title())
	assert.Equal(t, "#4", bare.Description())
}

func TestRenderMarkdown(t *testing.T) {
	assert.Empty(t, renderMarkdown("   ", 40))
	assert.Contains(t, renderMarkdown("plain", 40), "plain")
}
