package domain

type (
	Username = string

	ThreadId    = int64
	ThreadTitle = string
	ThreadIcon  = string

	PostText = string
)
