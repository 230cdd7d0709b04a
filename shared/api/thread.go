package api

import (
	"github.com/itchan-dev/forum/shared/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	User  string `json:"user" validate:"required"`
	Icon  string `json:"icon"`
	Title string `json:"title" validate:"required"`
	Text  string `json:"text" validate:"required"` // first post of the thread
}

type DeleteThreadRequest struct {
	User string `json:"user" validate:"required"`
}

// Response DTOs

// CreateThreadResponse carries the created thread together with its first post
type CreateThreadResponse struct {
	Thread domain.Thread `json:"thread"`
	Post   domain.Post   `json:"post"`
}

type DeleteThreadResponse struct {
	Deleted domain.ThreadId `json:"deleted"`
}
