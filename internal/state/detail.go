package state

import (
	"slices"
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
)

// Detail mirrors the posts of the open thread.
//
// The current thread id is a plain reference. Hide keeps it; only the
// delete flow (ClearCurrent) and Reset drop it.
type Detail struct {
	mu         sync.RWMutex
	currentID  domain.ThreadId
	hasCurrent bool
	title      domain.ThreadTitle
	visible    bool
	posts      []domain.Post
}

// Show points the view at id, shows title right away and makes the panel
// visible. Reopening the current thread keeps its posts until ReplacePosts;
// switching to another thread empties them.
func (d *Detail) Show(id domain.ThreadId, title domain.ThreadTitle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hasCurrent || d.currentID != id {
		d.posts = []domain.Post{}
	}
	d.currentID = id
	d.hasCurrent = true
	d.title = title
	d.visible = true
}

// ReplacePosts swaps in posts fetched for id. A response for a thread that is
// no longer current is dropped so the panel never shows another thread's
// posts; it reports whether the posts were applied.
func (d *Detail) ReplacePosts(id domain.ThreadId, posts []domain.Post) bool {
	newPosts := slices.Clone(posts)
	if newPosts == nil {
		newPosts = []domain.Post{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hasCurrent || d.currentID != id {
		return false
	}
	d.posts = newPosts
	return true
}

func (d *Detail) Hide() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible = false
}

func (d *Detail) ClearCurrent() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.currentID = 0
	d.hasCurrent = false
}

func (d *Detail) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.currentID = 0
	d.hasCurrent = false
	d.title = ""
	d.visible = false
	d.posts = nil
}

func (d *Detail) CurrentThread() (domain.ThreadId, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.currentID, d.hasCurrent
}

func (d *Detail) Title() domain.ThreadTitle {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.title
}

func (d *Detail) Visible() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.visible
}

func (d *Detail) Posts() []domain.Post {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.posts)
}
