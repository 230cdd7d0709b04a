package domain

type Thread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Icon  ThreadIcon  `json:"icon,omitempty"`
	User  Username    `json:"user,omitempty"` // owner, used by the service to authorize deletion
}
