package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/itchan-dev/forum/internal/state"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	authorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	panelStyle  = lipgloss.NewStyle().PaddingLeft(2)
)

func (m model) View() string {
	if m.app.Session.ActiveView() == state.ViewLogin {
		return m.viewLogin()
	}
	return m.viewForum()
}

func (m model) viewLogin() string {
	parts := []string{
		headerStyle.Render("Forum"),
		"Username: " + m.username.View(),
	}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, footerStyle.Render("enter: log in  esc: quit"))
	return strings.Join(parts, "\n\n")
}

func (m model) viewForum() string {
	header := headerStyle.Render("Logged in as " + m.app.Session.CurrentUsername())

	body := m.threads.View()
	if m.app.Detail.Visible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panelStyle.Render(m.viewDetail()))
	}

	parts := []string{header, body}
	if p := m.viewPrompt(); p != "" {
		parts = append(parts, p)
	}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, footerStyle.Render(m.helpLine()))
	return strings.Join(parts, "\n\n")
}

func (m model) viewDetail() string {
	return strings.Join([]string{
		titleStyle.Render(m.app.Detail.Title()),
		m.posts.View(),
		"> " + m.compose.View(),
	}, "\n\n")
}

func (m model) viewPrompt() string {
	switch m.prompt {
	case promptTitle:
		return "Enter thread title: " + m.input.View()
	case promptText:
		return "Enter first post content: " + m.input.View()
	case promptDelete:
		return "Are you sure you want to delete this thread? (y/N)"
	default:
		return ""
	}
}

func (m model) helpLine() string {
	if m.prompt != promptNone {
		return "enter: next  esc: cancel"
	}
	if m.focus == focusCompose {
		return "enter: post  esc/tab: back to threads"
	}
	help := "enter: open  n: new thread  r: refresh  L: log out  q: quit"
	if m.app.Detail.Visible() {
		help = "enter: open  tab: reply  d: delete  esc: close  n: new thread  r: refresh  L: log out  q: quit"
	}
	return help
}
