package realtime

import (
	"encoding/json"
	"sync"
)

// Subscription is a live feed of payloads for one event name. C is closed
// when the subscription is cancelled or the connection tears down. Cancel
// detaches exactly this listener; other subscriptions to the same event
// name keep receiving.
type Subscription struct {
	C      <-chan json.RawMessage
	cancel func()
	once   sync.Once
}

// Cancel detaches the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// listener queues payloads for one subscriber and pumps them to its channel
// in arrival order, so a slow consumer never blocks the read loop.
type listener struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []json.RawMessage
	stopped bool
	closing bool

	ch   chan json.RawMessage
	done chan struct{}
}

func newListener() *listener {
	l := &listener{
		ch:   make(chan json.RawMessage),
		done: make(chan struct{}),
	}
	l.cond = sync.NewCond(&l.mu)
	go l.pump()
	return l
}

func (l *listener) push(data json.RawMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped || l.closing {
		return
	}
	l.pending = append(l.pending, data)
	l.cond.Signal()
}

// stop cancels immediately: pending payloads are dropped and the channel
// closes. Used when the subscriber detaches itself.
func (l *listener) stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	l.pending = nil
	l.mu.Unlock()
	l.cond.Signal()
	close(l.done)
}

// finish closes gently: already-queued payloads (such as the final
// disconnect event) are still delivered, then the channel closes. Used when
// the connection tears down.
func (l *listener) finish() {
	l.mu.Lock()
	l.closing = true
	l.mu.Unlock()
	l.cond.Signal()
}

func (l *listener) pump() {
	defer close(l.ch)
	for {
		l.mu.Lock()
		for len(l.pending) == 0 && !l.stopped && !l.closing {
			l.cond.Wait()
		}
		if l.stopped || (l.closing && len(l.pending) == 0) {
			l.mu.Unlock()
			return
		}
		data := l.pending[0]
		l.pending = l.pending[1:]
		l.mu.Unlock()

		select {
		case l.ch <- data:
		case <-l.done:
			return
		}
	}
}
