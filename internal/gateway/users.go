package gateway

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/shared/domain"
)

func (c *APIClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, call{op: "list users", method: http.MethodGet, path: "/users"}, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
