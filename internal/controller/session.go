package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/itchan-dev/forum/internal/state"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

// Login checks that username exists on the service. It is an existence
// check, nothing more. On success the forum view becomes active and the
// catalog is loaded once.
func (c *Controller) Login(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return internal_errors.ErrMissingUsername
	}

	users, err := c.gw.ListUsers(ctx)
	if err != nil {
		return err
	}

	found := false
	for _, u := range users {
		if u.Username == username {
			found = true
			break
		}
	}
	if !found {
		logger.Log.Info("login rejected", "component", "controller", "user", username)
		return internal_errors.ErrUsernameNotFound
	}

	c.app.Session.SignIn(username)
	c.app.Notify(state.ChangeSession)
	logger.Log.Info("user logged in", "component", "controller", "user", username)

	if err := c.RefreshCatalog(ctx); err != nil {
		return fmt.Errorf("initial thread list: %w", err)
	}
	return nil
}

// Logout drops the identity and every mirror.
func (c *Controller) Logout() {
	user := c.app.Session.CurrentUsername()
	c.app.Session.SignOut()
	c.app.Catalog.Clear()
	c.app.Detail.Reset()
	c.app.Notify(state.ChangeSession)
	logger.Log.Info("user logged out", "component", "controller", "user", user)
}

func (c *Controller) requireUser() (string, error) {
	user := c.app.Session.CurrentUsername()
	if user == "" {
		return "", internal_errors.ErrNotAuthenticated
	}
	return user, nil
}
