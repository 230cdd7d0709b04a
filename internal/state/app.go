package state

import "sync"

// Change tells observers which part of the state was touched.
type Change int

const (
	ChangeSession Change = iota
	ChangeCatalog
	ChangeDetail
)

const subscriberBuffer = 16

// App is the whole client state, owned by the controller.
type App struct {
	Session *Session
	Catalog *Catalog
	Detail  *Detail

	mu   sync.Mutex
	subs []chan Change
}

func NewApp() *App {
	return &App{
		Session: &Session{},
		Catalog: &Catalog{},
		Detail:  &Detail{},
	}
}

// Subscribe returns a channel receiving every change. Slow readers miss
// notifications instead of blocking the writer; state is always read fresh.
func (a *App) Subscribe() <-chan Change {
	ch := make(chan Change, subscriberBuffer)
	a.mu.Lock()
	a.subs = append(a.subs, ch)
	a.mu.Unlock()
	return ch
}

func (a *App) Notify(c Change) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, ch := range a.subs {
		select {
		case ch <- c:
		default:
		}
	}
}
