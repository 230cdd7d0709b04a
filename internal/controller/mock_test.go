package controller

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
)

// MockGateway delegates to Next unless a Mock* override is set, and counts
// calls per operation.
type MockGateway struct {
	Next Gateway

	MockListUsers    func(ctx context.Context) ([]domain.User, error)
	MockListThreads  func(ctx context.Context) ([]domain.Thread, error)
	MockGetPosts     func(ctx context.Context, threadID domain.ThreadId) ([]domain.Post, error)
	MockCreatePost   func(ctx context.Context, threadID domain.ThreadId, user, text string) error
	MockCreateThread func(ctx context.Context, user, icon, title, text string) (api.CreateThreadResponse, error)
	MockDeleteThread func(ctx context.Context, threadID domain.ThreadId, user string) error

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockGateway) count(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[op]++
}

func (m *MockGateway) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *MockGateway) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *MockGateway) ListUsers(ctx context.Context) ([]domain.User, error) {
	m.count("ListUsers")
	if m.MockListUsers != nil {
		return m.MockListUsers(ctx)
	}
	return m.Next.ListUsers(ctx)
}

func (m *MockGateway) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	m.count("ListThreads")
	if m.MockListThreads != nil {
		return m.MockListThreads(ctx)
	}
	return m.Next.ListThreads(ctx)
}

func (m *MockGateway) GetPosts(ctx context.Context, threadID domain.ThreadId) ([]domain.Post, error) {
	m.count("GetPosts")
	if m.MockGetPosts != nil {
		return m.MockGetPosts(ctx, threadID)
	}
	return m.Next.GetPosts(ctx, threadID)
}

func (m *MockGateway) CreatePost(ctx context.Context, threadID domain.ThreadId, user, text string) error {
	m.count("CreatePost")
	if m.MockCreatePost != nil {
		return m.MockCreatePost(ctx, threadID, user, text)
	}
	return m.Next.CreatePost(ctx, threadID, user, text)
}

func (m *MockGateway) CreateThread(ctx context.Context, user, icon, title, text string) (api.CreateThreadResponse, error) {
	m.count("CreateThread")
	if m.MockCreateThread != nil {
		return m.MockCreateThread(ctx, user, icon, title, text)
	}
	return m.Next.CreateThread(ctx, user, icon, title, text)
}

func (m *MockGateway) DeleteThread(ctx context.Context, threadID domain.ThreadId, user string) error {
	m.count("DeleteThread")
	if m.MockDeleteThread != nil {
		return m.MockDeleteThread(ctx, threadID, user)
	}
	return m.Next.DeleteThread(ctx, threadID, user)
}
