package controller

import (
	"context"

	"github.com/itchan-dev/forum/internal/state"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
)

// Gateway is the remote service as the controller sees it. Any error it
// returns means "no result".
type Gateway interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListThreads(ctx context.Context) ([]domain.Thread, error)
	GetPosts(ctx context.Context, threadID domain.ThreadId) ([]domain.Post, error)
	CreatePost(ctx context.Context, threadID domain.ThreadId, user, text string) error
	CreateThread(ctx context.Context, user, icon, title, text string) (api.CreateThreadResponse, error)
	DeleteThread(ctx context.Context, threadID domain.ThreadId, user string) error
}

// Controller turns user intents into gateway calls and state refreshes.
// Every step of a workflow waits for the previous response; a failed step
// aborts the rest.
type Controller struct {
	gw   Gateway
	app  *state.App
	icon domain.ThreadIcon
}

func New(gw Gateway, app *state.App, icon domain.ThreadIcon) *Controller {
	return &Controller{gw: gw, app: app, icon: icon}
}

func (c *Controller) App() *state.App {
	return c.app
}
