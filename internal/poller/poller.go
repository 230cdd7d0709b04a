package poller

import (
	"context"
	"sync"
	"time"

	"github.com/itchan-dev/forum/shared/logger"
)

type Refresher interface {
	RefreshCatalog(ctx context.Context) error
}

// Gate reports whether the forum view is the active one.
type Gate interface {
	ForumActive() bool
}

// TickSource starts a ticker and returns its channel and stop function.
type TickSource func(interval time.Duration) (<-chan time.Time, func())

func TimeTicker(interval time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(interval)
	return t.C, t.Stop
}

// Scheduler refreshes the thread catalog on a fixed interval while the forum
// view is active. It never touches the detail view.
type Scheduler struct {
	refresher Refresher
	gate      Gate
	interval  time.Duration
	ticks     TickSource

	// OnTick, if set, is called after every tick with whether a refresh ran
	// and its error.
	OnTick func(refreshed bool, err error)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(refresher Refresher, gate Gate, interval time.Duration) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		gate:      gate,
		interval:  interval,
		ticks:     TimeTicker,
	}
}

// WithTickSource replaces the wall-clock ticker, used by tests.
func (s *Scheduler) WithTickSource(ts TickSource) *Scheduler {
	s.ticks = ts
	return s
}

// Start launches the polling goroutine. Calling Start on a running
// scheduler does nothing; once ctx is done the scheduler can be started again.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	c, stop := s.ticks(s.interval)
	logger.Log.Info("started catalog polling", "component", "poller", "interval", s.interval)

	go func() {
		defer close(done)
		defer stop()
		for {
			select {
			case <-c:
				s.tick(ctx)
			case <-ctx.Done():
				s.release(done)
				cancel()
				logger.Log.Info("catalog polling stopped", "component", "poller")
				return
			}
		}
	}()
}

// release forgets the run identified by done, unless Stop or a newer Start
// already replaced it. A parent context cancelled outside Stop lands here.
func (s *Scheduler) release(done chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == done {
		s.cancel, s.done = nil, nil
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if !s.gate.ForumActive() {
		if s.OnTick != nil {
			s.OnTick(false, nil)
		}
		return
	}
	err := s.refresher.RefreshCatalog(ctx)
	if err != nil {
		logger.Log.Warn("catalog poll failed", "component", "poller", "error", err)
	}
	if s.OnTick != nil {
		s.OnTick(true, err)
	}
}

// Stop cancels polling and waits for the goroutine to exit. It is safe to
// call on a stopped scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
