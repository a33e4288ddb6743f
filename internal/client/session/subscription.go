package session

import (
	"sync"

	"github.com/madil51/chunk-client/internal/client/models"
)

// Subscription is a live view of the session identity. C carries the
// replayed current value followed by every change; it is closed after
// Cancel. Cancel is safe to call more than once and detaches exactly this
// observer.
type Subscription struct {
	C      <-chan *models.User
	cancel func()
	once   sync.Once
}

// Cancel detaches the subscription. No value is delivered after Cancel
// returns, apart from one that was already being handed over.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// observer buffers published identities and pumps them to its channel in
// order, so a slow consumer never blocks the store or its siblings.
type observer struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []*models.User
	stopped bool

	ch   chan *models.User
	done chan struct{}
}

func newObserver() *observer {
	o := &observer{
		ch:   make(chan *models.User),
		done: make(chan struct{}),
	}
	o.cond = sync.NewCond(&o.mu)
	go o.pump()
	return o
}

func (o *observer) push(u *models.User) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		return
	}
	o.pending = append(o.pending, u)
	o.cond.Signal()
}

func (o *observer) stop() {
	o.mu.Lock()
	o.stopped = true
	o.pending = nil
	o.mu.Unlock()
	o.cond.Signal()
	close(o.done)
}

func (o *observer) pump() {
	defer close(o.ch)
	for {
		o.mu.Lock()
		for len(o.pending) == 0 && !o.stopped {
			o.cond.Wait()
		}
		if o.stopped {
			o.mu.Unlock()
			return
		}
		u := o.pending[0]
		o.pending = o.pending[1:]
		o.mu.Unlock()

		select {
		case o.ch <- u:
		case <-o.done:
			return
		}
	}
}
