package state

import (
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
)

// View is the screen the presentation layer shows. Exactly one is active.
type View int

const (
	ViewLogin View = iota
	ViewForum
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewForum:
		return "forum"
	default:
		return "unknown"
	}
}

// Session holds the logged-in identity. The forum view is only reachable
// while a username is set.
type Session struct {
	mu       sync.RWMutex
	username domain.Username
	view     View
}

// SignIn sets the identity and switches to the forum view.
func (s *Session) SignIn(username domain.Username) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	s.view = ViewForum
}

// SignOut clears the identity and returns to the login view.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
	s.view = ViewLogin
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username != ""
}

func (s *Session) CurrentUsername() domain.Username {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *Session) ActiveView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Session) ForumActive() bool {
	return s.ActiveView() == ViewForum
}
