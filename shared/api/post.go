package api

type CreatePostRequest struct {
	User string `json:"user" validate:"required"`
	Text string `json:"text" validate:"required"`
}
