package domain

// User is a registered forum account. The remote service may return more
// attributes; the client only ever looks at the username.
type User struct {
	Username Username `json:"username"`
}
