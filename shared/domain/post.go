package domain

type Post struct {
	User Username `json:"user"`
	Text PostText `json:"text"`
}
