package controller

import (
	"context"
	"strings"

	"github.com/itchan-dev/forum/shared/api"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

// AddPost replies to the current thread and reloads its posts after the
// service accepted the reply. A failed create is not rolled back: the post
// may or may not exist on the service.
func (c *Controller) AddPost(ctx context.Context, text string) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}
	id, ok := c.app.Detail.CurrentThread()
	if !ok {
		return internal_errors.ErrNoThreadOpen
	}

	req := api.CreatePostRequest{User: user, Text: strings.TrimSpace(text)}
	if err := utils.Validate(&req); err != nil {
		return internal_errors.ErrEmptyContent
	}

	if err := c.gw.CreatePost(ctx, id, req.User, req.Text); err != nil {
		return err
	}
	logger.Log.Debug("post created", "component", "controller", "user", user, "thread_id", id)

	return c.OpenThread(ctx, id, c.app.Detail.Title())
}
