// Package tui is the terminal presentation layer. It renders the shared
// state and feeds user intents to the controller; it holds no forum data of
// its own.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/itchan-dev/forum/internal/controller"
	"github.com/itchan-dev/forum/internal/poller"
)

// Run blocks until the user quits. The scheduler is started on login and is
// always stopped on return.
func Run(ctx context.Context, ctrl *controller.Controller, sched *poller.Scheduler) error {
	defer sched.Stop()
	p := tea.NewProgram(newModel(ctx, ctrl, sched), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
