package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
)

// ListThreads returns the threads in the order the service sent them.
func (c *APIClient) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	var threads []domain.Thread
	if err := c.do(ctx, call{op: "list threads", method: http.MethodGet, path: "/threads"}, &threads); err != nil {
		return nil, err
	}
	if threads == nil {
		threads = []domain.Thread{}
	}
	return threads, nil
}

func (c *APIClient) CreateThread(ctx context.Context, user, icon, title, text string) (api.CreateThreadResponse, error) {
	var created api.CreateThreadResponse
	err := c.do(ctx, call{
		op:     "create thread",
		method: http.MethodPost,
		path:   "/threads",
		body:   api.CreateThreadRequest{User: user, Icon: icon, Title: title, Text: text},
	}, &created)
	return created, err
}

// DeleteThread only reports success; the confirmation body is drained and ignored.
func (c *APIClient) DeleteThread(ctx context.Context, threadID domain.ThreadId, user string) error {
	return c.do(ctx, call{
		op:     "delete thread",
		method: http.MethodDelete,
		path:   fmt.Sprintf("/threads/%d", threadID),
		body:   api.DeleteThreadRequest{User: user},
	}, nil)
}
