package state

import (
	"slices"
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
)

// Catalog mirrors the service's thread list. It is only ever replaced as a
// whole, so after a refresh it equals the latest response that completed.
type Catalog struct {
	mu      sync.RWMutex
	threads []domain.Thread
	version uint64
}

// Replace swaps in a copy of threads, keeping the server order.
func (c *Catalog) Replace(threads []domain.Thread) {
	newThreads := slices.Clone(threads)
	if newThreads == nil {
		newThreads = []domain.Thread{}
	}

	c.mu.Lock()
	c.threads = newThreads
	c.version++
	c.mu.Unlock()
}

func (c *Catalog) Threads() []domain.Thread {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.threads)
}

func (c *Catalog) Find(id domain.ThreadId) (domain.Thread, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := slices.IndexFunc(c.threads, func(t domain.Thread) bool { return t.Id == id })
	if i < 0 {
		return domain.Thread{}, false
	}
	return c.threads[i], true
}

// Version increases on every Replace and Clear.
func (c *Catalog) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Catalog) Clear() {
	c.mu.Lock()
	c.threads = nil
	c.version++
	c.mu.Unlock()
}
