package controller

import (
	"context"

	"github.com/itchan-dev/forum/internal/state"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

// RefreshCatalog replaces the thread mirror with the service's list. On
// failure the old mirror stays. It never touches the detail view.
// A list that arrives after the user changed (logout, or a new login) is
// dropped.
func (c *Controller) RefreshCatalog(ctx context.Context) error {
	user := c.app.Session.CurrentUsername()
	threads, err := c.gw.ListThreads(ctx)
	if err != nil {
		return err
	}
	if c.app.Session.CurrentUsername() != user {
		logger.Log.Debug("dropped thread list fetched for a previous session", "component", "controller", "user", user)
		return nil
	}
	c.app.Catalog.Replace(threads)
	c.app.Notify(state.ChangeCatalog)
	logger.Log.Debug("catalog refreshed", "component", "controller", "threads", len(threads))
	return nil
}

// SelectThread opens a thread listed in the current catalog.
func (c *Controller) SelectThread(ctx context.Context, id domain.ThreadId) error {
	if _, err := c.requireUser(); err != nil {
		return err
	}
	thread, ok := c.app.Catalog.Find(id)
	if !ok {
		return internal_errors.ErrThreadNotInCatalog
	}
	return c.OpenThread(ctx, thread.Id, thread.Title)
}

// OpenThread shows the title at once and then loads the posts. If loading
// fails the previous posts stay on screen.
func (c *Controller) OpenThread(ctx context.Context, id domain.ThreadId, title domain.ThreadTitle) error {
	c.app.Detail.Show(id, title)
	c.app.Notify(state.ChangeDetail)

	posts, err := c.gw.GetPosts(ctx, id)
	if err != nil {
		return err
	}
	if c.app.Detail.ReplacePosts(id, posts) {
		c.app.Notify(state.ChangeDetail)
	} else {
		logger.Log.Debug("dropped posts for a thread that is no longer open", "component", "controller", "thread_id", id)
	}
	return nil
}

// CloseThread hides the detail view. The current thread id is kept.
func (c *Controller) CloseThread() {
	c.app.Detail.Hide()
	c.app.Notify(state.ChangeDetail)
}

// CreateThread posts a new thread with its first post and reloads the
// catalog once the service has accepted it. Only empty fields are rejected;
// both are sent as typed.
func (c *Controller) CreateThread(ctx context.Context, title, text string) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	req := api.CreateThreadRequest{
		User:  user,
		Icon:  c.icon,
		Title: title,
		Text:  text,
	}
	if err := utils.Validate(&req); err != nil {
		return internal_errors.ErrRequiredFields
	}

	created, err := c.gw.CreateThread(ctx, req.User, req.Icon, req.Title, req.Text)
	if err != nil {
		return err
	}
	logger.Log.Info("thread created", "component", "controller", "user", user, "thread_id", created.Thread.Id)

	return c.RefreshCatalog(ctx)
}

// DeleteThread deletes the open thread. confirmed=false is a no-op so the
// presentation layer can pass its confirmation answer straight through.
//
// The detail view is hidden whatever the outcome of the remote call. Only
// after a successful delete is the current thread cleared and the catalog
// reloaded.
func (c *Controller) DeleteThread(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return nil
	}
	user, err := c.requireUser()
	if err != nil {
		return err
	}
	id, ok := c.app.Detail.CurrentThread()
	if !ok {
		return internal_errors.ErrNoThreadOpen
	}

	err = c.gw.DeleteThread(ctx, id, user)
	c.app.Detail.Hide()
	c.app.Notify(state.ChangeDetail)
	if err != nil {
		return err
	}

	c.app.Detail.ClearCurrent()
	logger.Log.Info("thread deleted", "component", "controller", "user", user, "thread_id", id)
	return c.RefreshCatalog(ctx)
}
