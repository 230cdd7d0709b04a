package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
)

func (c *APIClient) GetPosts(ctx context.Context, threadID domain.ThreadId) ([]domain.Post, error) {
	var posts []domain.Post
	path := fmt.Sprintf("/threads/%d/posts", threadID)
	if err := c.do(ctx, call{op: "get posts", method: http.MethodGet, path: path}, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// CreatePost only reports success; the created post in the response is not needed.
func (c *APIClient) CreatePost(ctx context.Context, threadID domain.ThreadId, user, text string) error {
	return c.do(ctx, call{
		op:     "create post",
		method: http.MethodPost,
		path:   fmt.Sprintf("/threads/%d/posts", threadID),
		body:   api.CreatePostRequest{User: user, Text: text},
	}, nil)
}
