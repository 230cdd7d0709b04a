package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/itchan-dev/forum/internal/controller"
	"github.com/itchan-dev/forum/internal/poller"
	"github.com/itchan-dev/forum/internal/state"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

type focus int

const (
	focusList focus = iota
	focusCompose
)

type prompt int

const (
	promptNone prompt = iota
	promptTitle
	promptText
	promptDelete
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	listMinWidth  = 30
)

type model struct {
	ctx     context.Context
	ctrl    *controller.Controller
	sched   *poller.Scheduler
	app     *state.App
	changes <-chan state.Change

	width  int
	height int

	username textinput.Model
	threads  list.Model
	posts    viewport.Model
	compose  textinput.Model
	input    textinput.Model // create-thread prompts

	focus      focus
	prompt     prompt
	draftTitle string
	notice     string

	catalogVersion uint64
}

func newModel(ctx context.Context, ctrl *controller.Controller, sched *poller.Scheduler) model {
	app := ctrl.App()
	m := model{
		ctx:     ctx,
		ctrl:    ctrl,
		sched:   sched,
		app:     app,
		changes: app.Subscribe(),
		width:   defaultWidth,
		height:  defaultHeight,
	}

	m.username = textinput.New()
	m.username.Placeholder = "username"
	m.username.CharLimit = 64
	m.username.Focus()

	m.compose = textinput.New()
	m.compose.Placeholder = "write a reply"
	m.compose.CharLimit = 4000

	m.input = textinput.New()
	m.input.CharLimit = 4000

	m.threads = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.threads.Title = "Threads"
	m.threads.SetShowHelp(false)
	m.threads.SetFilteringEnabled(false)
	m.threads.SetStatusBarItemName("thread", "threads")

	m.posts = viewport.New(0, 0)

	m.resize()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.changes))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.syncDetail()
		return m, nil

	case changeMsg:
		m.sync()
		return m, waitForChange(m.changes)

	case resultMsg:
		return m.handleResult(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.sched.Stop()
			return m, tea.Quit
		}
		if m.app.Session.ActiveView() == state.ViewLogin {
			return m.updateLogin(msg)
		}
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		if m.focus == focusCompose {
			return m.updateCompose(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m model) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	m.notice = internal_errors.Notice(msg.err)

	switch msg.op {
	case opLogin:
		if m.app.Session.IsAuthenticated() {
			m.username.Reset()
			m.username.Blur()
			m.focus = focusList
			m.sched.Start(m.ctx)
		}
	case opAddPost:
		if msg.err == nil {
			m.compose.Reset()
		}
	case opDeleteThread:
		m.focus = focusList
		m.compose.Blur()
	}

	m.sync()
	return m, nil
}

func (m model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.username.Value()
		m.notice = ""
		return m, runOp(m.ctx, opLogin, func(ctx context.Context) error {
			return m.ctrl.Login(ctx, name)
		})
	case "esc":
		m.sched.Stop()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	return m, cmd
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.sched.Stop()
		return m, tea.Quit
	case "enter":
		it, ok := m.threads.SelectedItem().(threadItem)
		if !ok {
			return m, nil
		}
		m.notice = ""
		id := it.thread.Id
		return m, runOp(m.ctx, opSelect, func(ctx context.Context) error {
			return m.ctrl.SelectThread(ctx, id)
		})
	case "r":
		return m, runOp(m.ctx, opRefresh, m.ctrl.RefreshCatalog)
	case "n":
		m.prompt = promptTitle
		m.draftTitle = ""
		m.input.Reset()
		m.input.Placeholder = "thread title"
		m.notice = ""
		cmd := m.input.Focus()
		return m, cmd
	case "d":
		if !m.app.Detail.Visible() {
			return m, nil
		}
		m.prompt = promptDelete
		m.notice = ""
		return m, nil
	case "tab", "p":
		if !m.app.Detail.Visible() {
			return m, nil
		}
		m.focus = focusCompose
		cmd := m.compose.Focus()
		return m, cmd
	case "esc":
		m.ctrl.CloseThread()
		m.sync()
		return m, nil
	case "L":
		m.sched.Stop()
		m.ctrl.Logout()
		m.notice = ""
		m.focus = focusList
		m.prompt = promptNone
		m.sync()
		cmd := m.username.Focus()
		return m, cmd
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.posts, cmd = m.posts.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.threads, cmd = m.threads.Update(msg)
	return m, cmd
}

func (m model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.compose.Value()
		m.notice = ""
		return m, runOp(m.ctx, opAddPost, func(ctx context.Context) error {
			return m.ctrl.AddPost(ctx, text)
		})
	case "esc", "tab":
		m.focus = focusList
		m.compose.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt == promptDelete {
		m.prompt = promptNone
		confirmed := msg.String() == "y" || msg.String() == "Y"
		if !confirmed {
			return m, nil
		}
		return m, runOp(m.ctx, opDeleteThread, func(ctx context.Context) error {
			return m.ctrl.DeleteThread(ctx, confirmed)
		})
	}

	switch msg.String() {
	case "esc":
		m.prompt = promptNone
		m.input.Blur()
		return m, nil
	case "enter":
		if m.prompt == promptTitle {
			m.draftTitle = m.input.Value()
			m.input.Reset()
			m.input.Placeholder = "first post"
			m.prompt = promptText
			return m, nil
		}
		title, text := m.draftTitle, m.input.Value()
		m.prompt = promptNone
		m.input.Blur()
		return m, runOp(m.ctx, opCreateThread, func(ctx context.Context) error {
			return m.ctrl.CreateThread(ctx, title, text)
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sync pulls the shared state into the widgets.
func (m *model) sync() {
	if v := m.app.Catalog.Version(); v != m.catalogVersion {
		m.catalogVersion = v
		var selected domain.ThreadId
		if it, ok := m.threads.SelectedItem().(threadItem); ok {
			selected = it.thread.Id
		}
		m.threads.SetItems(threadItems(m.app.Catalog.Threads()))
		if selected != 0 {
			selectThreadById(&m.threads, selected)
		}
	}
	if !m.app.Detail.Visible() && m.focus == focusCompose {
		m.focus = focusList
		m.compose.Blur()
	}
	m.syncDetail()
}

func (m *model) syncDetail() {
	var b strings.Builder
	for i, p := range m.app.Detail.Posts() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(authorStyle.Render(p.User + ":"))
		b.WriteString("\n")
		b.WriteString(renderMarkdown(p.Text, m.posts.Width))
	}
	m.posts.SetContent(b.String())
}

func (m *model) resize() {
	bodyHeight := m.height - 8
	if bodyHeight < 6 {
		bodyHeight = 6
	}
	listWidth := m.width / 3
	if listWidth < listMinWidth {
		listWidth = listMinWidth
	}
	detailWidth := m.width - listWidth - 4
	if detailWidth < 20 {
		detailWidth = 20
	}

	m.threads.SetSize(listWidth, bodyHeight)
	m.posts.Width = detailWidth
	m.posts.Height = bodyHeight - 4
	m.compose.Width = detailWidth - 4
	m.input.Width = m.width - 20
}
