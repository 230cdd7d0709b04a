package devserver

import (
	"net/http"
	"slices"
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/errors"
)

// Store is the in-memory system of record behind the development service.
type Store struct {
	mu      sync.RWMutex
	users   []domain.User
	threads []domain.Thread
	posts   map[domain.ThreadId][]domain.Post
	nextId  domain.ThreadId
}

func NewStore(usernames ...string) *Store {
	s := &Store{
		posts:  make(map[domain.ThreadId][]domain.Post),
		nextId: 1,
	}
	for _, u := range usernames {
		s.users = append(s.users, domain.User{Username: u})
	}
	return s
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *Store) userExists(username domain.Username) bool {
	return slices.ContainsFunc(s.users, func(u domain.User) bool { return u.Username == username })
}

// Threads returns threads newest first.
func (s *Store) Threads() []domain.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.threads)
	slices.Reverse(out)
	return out
}

func (s *Store) Posts(id domain.ThreadId) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts, ok := s.posts[id]
	if !ok {
		return nil, &errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: http.StatusNotFound}
	}
	return slices.Clone(posts), nil
}

func (s *Store) CreatePost(id domain.ThreadId, post domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.userExists(post.User) {
		return &errors.ErrorWithStatusCode{Message: "Unknown user", StatusCode: http.StatusForbidden}
	}
	if _, ok := s.posts[id]; !ok {
		return &errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: http.StatusNotFound}
	}
	s.posts[id] = append(s.posts[id], post)
	return nil
}

func (s *Store) CreateThread(thread domain.Thread, first domain.Post) (domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.userExists(thread.User) {
		return domain.Thread{}, &errors.ErrorWithStatusCode{Message: "Unknown user", StatusCode: http.StatusForbidden}
	}
	thread.Id = s.nextId
	s.nextId++
	s.threads = append(s.threads, thread)
	s.posts[thread.Id] = []domain.Post{first}
	return thread, nil
}

// DeleteThread removes a thread and its posts. Only the owner may delete.
func (s *Store) DeleteThread(id domain.ThreadId, user domain.Username) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.threads, func(t domain.Thread) bool { return t.Id == id })
	if i < 0 {
		return &errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: http.StatusNotFound}
	}
	if s.threads[i].User != user {
		return &errors.ErrorWithStatusCode{Message: "Only the thread owner can delete it", StatusCode: http.StatusForbidden}
	}
	s.threads = slices.Delete(s.threads, i, i+1)
	delete(s.posts, id)
	return nil
}
