package errors

import (
	stderrors "errors"
	"fmt"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Input validation and lookup failures. These are detected locally and never
// reach the network.
var (
	ErrMissingUsername    = stderrors.New("missing username")
	ErrUsernameNotFound   = stderrors.New("username not found")
	ErrEmptyContent       = stderrors.New("empty post content")
	ErrRequiredFields     = stderrors.New("thread title and text are required")
	ErrNotAuthenticated   = stderrors.New("not logged in")
	ErrNoThreadOpen       = stderrors.New("no thread is open")
	ErrThreadNotInCatalog = stderrors.New("thread is not in the catalog")
)

// RemoteError is the single failure shape produced by the gateway. Callers
// treat it as "no result" and abort the rest of their workflow.
type RemoteError struct {
	Op         string
	Method     string
	Path       string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s %s: status %d: %v", e.Op, e.Method, e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.Path, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func IsRemote(err error) bool {
	var re *RemoteError
	return stderrors.As(err, &re)
}

const remoteNotice = "Failed to fetch data from the API. Please ensure the API server is running."

var notices = []struct {
	err  error
	text string
}{
	{ErrMissingUsername, "Please enter your username!"},
	{ErrUsernameNotFound, "Username not found!"},
	{ErrEmptyContent, "Post content cannot be empty!"},
	{ErrRequiredFields, "Both fields are required!"},
	{ErrNotAuthenticated, "Please log in first!"},
	{ErrNoThreadOpen, "Open a thread first!"},
	{ErrThreadNotInCatalog, "That thread no longer exists."},
}

// Notice turns an error returned by the controller into the text shown to the
// user. Nil yields an empty string.
func Notice(err error) string {
	if err == nil {
		return ""
	}
	if IsRemote(err) {
		return remoteNotice
	}
	for _, n := range notices {
		if stderrors.Is(err, n.err) {
			return n.text
		}
	}
	return err.Error()
}
