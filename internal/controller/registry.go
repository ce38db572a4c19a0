package controller

import (
	"sync"
	"time"

	"authdemo/internal/logging"
	"authdemo/internal/service"
)

const minSweepInterval = 10 * time.Millisecond

type client struct {
	ctrl     *FormController
	lastSeen time.Time
}

// Registry hands out one FormController per client id. All controllers share
// the same auth service and therefore the same credential store. Clients not
// seen for Options.ClientIdleTimeout are closed and forgotten.
type Registry struct {
	mu      sync.Mutex
	auth    service.AuthService
	opts    Options
	clients map[string]*client
	now     func() time.Time

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewRegistry creates an empty registry and, when an idle timeout is set,
// starts sweeping idle clients in the background.
func NewRegistry(auth service.AuthService, opts Options) *Registry {
	return newRegistry(auth, opts, time.Now)
}

func newRegistry(auth service.AuthService, opts Options, now func() time.Time) *Registry {
	r := &Registry{
		auth:    auth,
		opts:    opts,
		clients: make(map[string]*client),
		now:     now,
	}
	if opts.ClientIdleTimeout > 0 {
		r.stop = make(chan struct{})
		r.done = make(chan struct{})
		go r.sweep(sweepInterval(opts.ClientIdleTimeout))
	}
	return r
}

func sweepInterval(idle time.Duration) time.Duration {
	if iv := idle / 2; iv > minSweepInterval {
		return iv
	}
	return minSweepInterval
}

// Get returns the controller for clientID, creating it on first use, and
// marks the client as seen.
func (r *Registry) Get(clientID string) *FormController {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[clientID]
	if !ok {
		c = &client{ctrl: NewFormController(r.auth, r.opts)}
		r.clients[clientID] = c
	}
	c.lastSeen = r.now()
	return c.ctrl
}

// Len reports how many clients have a controller.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// EvictIdle closes and removes every client last seen at least
// ClientIdleTimeout before now. It returns the number evicted.
func (r *Registry) EvictIdle(now time.Time) int {
	if r.opts.ClientIdleTimeout <= 0 {
		return 0
	}

	r.mu.Lock()
	var stale []*FormController
	for id, c := range r.clients {
		if now.Sub(c.lastSeen) >= r.opts.ClientIdleTimeout {
			stale = append(stale, c.ctrl)
			delete(r.clients, id)
		}
	}
	r.mu.Unlock()

	for _, ctrl := range stale {
		ctrl.Close()
	}
	if len(stale) > 0 {
		logging.L.Debug("evicted idle clients", "count", len(stale))
	}
	return len(stale)
}

func (r *Registry) sweep(interval time.Duration) {
	defer close(r.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.EvictIdle(r.now())
		}
	}
}

// Close stops the sweeper and the timers of every controller.
func (r *Registry) Close() {
	r.closeOnce.Do(func() {
		if r.stop != nil {
			close(r.stop)
			<-r.done
		}
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.clients {
		c.ctrl.Close()
		delete(r.clients, id)
	}
}
