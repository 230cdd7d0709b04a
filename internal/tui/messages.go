package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/itchan-dev/forum/internal/state"
)

type op int

const (
	opLogin op = iota
	opRefresh
	opSelect
	opAddPost
	opCreateThread
	opDeleteThread
)

// resultMsg reports the end of a controller workflow.
type resultMsg struct {
	op  op
	err error
}

// changeMsg is delivered when the shared state changed outside Update,
// e.g. by a poll.
type changeMsg struct {
	change state.Change
}

func runOp(ctx context.Context, o op, f func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{op: o, err: f(ctx)}
	}
}

func waitForChange(ch <-chan state.Change) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg{change: c}
	}
}
