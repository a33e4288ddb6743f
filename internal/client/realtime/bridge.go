package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/madil51/chunk-client/internal/common"
	"github.com/madil51/chunk-client/internal/logging"
)

// State is the bridge connection state.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// TokenSource supplies the access token used to authenticate the
// connection. The session store satisfies it.
type TokenSource interface {
	Token() string
}

// Bridge owns the single live connection to the backend event channel and
// fans received frames out to per-event subscriptions. Only the bridge
// opens or closes the connection; there is never more than one per process.
type Bridge struct {
	url        string
	transports []Transport
	tokens     TokenSource
	log        logging.Logger

	mu        sync.Mutex
	state     State
	conn      Conn
	gen       int
	listeners map[string][]*listener
}

// NewBridge builds a Bridge for the given socket URL. Transports are tried
// in the order given; when none are passed the websocket transport is used.
func NewBridge(url string, tokens TokenSource, log logging.Logger, transports ...Transport) *Bridge {
	if len(transports) == 0 {
		transports = []Transport{WebSocketTransport{}}
	}
	return &Bridge{
		url:        url,
		transports: transports,
		tokens:     tokens,
		log:        log,
		listeners:  make(map[string][]*listener),
	}
}

// State returns the current connection state.
func (b *Bridge) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Connected reports whether a live connection exists.
func (b *Bridge) Connected() bool {
	return b.State() == StateConnected
}

// Open establishes the connection. It is a no-op when a connection already
// exists or is being established, and a logged no-op when no credential is
// available. Transports are tried in preference order; the first that
// connects wins. All transports failing is a Network error.
func (b *Bridge) Open(ctx context.Context) error {
	b.mu.Lock()
	if b.state != StateDisconnected {
		b.mu.Unlock()
		return nil
	}
	token := b.tokens.Token()
	if token == "" {
		b.mu.Unlock()
		b.log.Warn(ctx, "realtime: no credential, not opening connection")
		return nil
	}
	b.state = StateConnecting
	b.mu.Unlock()

	var conn Conn
	var dialErrs []error
	for _, tr := range b.transports {
		c, err := tr.Dial(ctx, b.url, token)
		if err != nil {
			b.log.Debug(ctx, "realtime: transport failed", "transport", tr.Name(), "err", err)
			dialErrs = append(dialErrs, fmt.Errorf("%s: %w", tr.Name(), err))
			continue
		}
		conn = c
		b.log.Info(ctx, "realtime: connected", "transport", tr.Name())
		break
	}

	b.mu.Lock()
	if b.state != StateConnecting {
		// Close raced us; abandon the dial result.
		b.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		return nil
	}
	if conn == nil {
		b.state = StateDisconnected
		b.mu.Unlock()
		return fmt.Errorf("%w: %w", common.ErrNetwork, errors.Join(dialErrs...))
	}
	b.gen++
	gen := b.gen
	b.conn = conn
	b.state = StateConnected
	b.mu.Unlock()

	go b.readLoop(ctx, conn, gen)
	// Synthesized for symmetry with the disconnect/error events in
	// readLoop. Subscribe requires a live connection, so no listener
	// exists yet and the event goes unobserved.
	b.dispatch(EventConnect, nil)
	return nil
}

// Close tears down the connection and cancels every subscription. Safe to
// call when already disconnected.
func (b *Bridge) Close() {
	b.mu.Lock()
	conn := b.conn
	b.conn = nil
	b.gen++
	wasConnected := b.state == StateConnected
	b.state = StateDisconnected
	detached := b.detachAllLocked()
	b.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if wasConnected {
		pushTo(detached[EventDisconnect], nil)
	}
	finishAll(detached)
}

// Subscribe returns a feed of payloads for eventName. Without a live
// connection it fails immediately with NotConnected instead of blocking.
func (b *Bridge) Subscribe(eventName string) (*Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil {
		return nil, common.ErrNotConnected
	}

	l := newListener()
	b.listeners[eventName] = append(b.listeners[eventName], l)

	return &Subscription{
		C: l.ch,
		cancel: func() {
			b.mu.Lock()
			b.removeListenerLocked(eventName, l)
			b.mu.Unlock()
			l.stop()
		},
	}, nil
}

// Emit sends a fire-and-forget event. Without a connection the send is a
// reported no-op: most callers cannot usefully react, so nothing is thrown.
func (b *Bridge) Emit(ctx context.Context, eventName string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		b.log.Error(ctx, "realtime: cannot encode payload", "event", eventName, "err", err)
		return
	}

	b.mu.Lock()
	conn := b.conn
	b.mu.Unlock()

	if conn == nil {
		b.log.Warn(ctx, "realtime: emit while disconnected, dropping event", "event", eventName)
		return
	}
	if err := conn.Send(Frame{Event: eventName, Data: data}); err != nil {
		b.log.Warn(ctx, "realtime: send failed", "event", eventName, "err", err)
	}
}

// readLoop receives frames until the transport closes, then synthesizes
// the lifecycle events and winds the bridge down. gen guards against a
// stale loop touching a newer connection.
func (b *Bridge) readLoop(ctx context.Context, conn Conn, gen int) {
	for {
		frame, err := conn.Receive()
		if err != nil {
			b.mu.Lock()
			if b.gen != gen {
				// Close already handled this connection.
				b.mu.Unlock()
				return
			}
			b.conn = nil
			b.state = StateDisconnected
			detached := b.detachAllLocked()
			b.mu.Unlock()

			if !errors.Is(err, io.EOF) {
				b.log.Warn(ctx, "realtime: connection error", "err", err)
				data, _ := json.Marshal(err.Error())
				pushTo(detached[EventError], data)
			} else {
				b.log.Info(ctx, "realtime: connection closed")
			}
			pushTo(detached[EventDisconnect], nil)
			finishAll(detached)
			return
		}
		b.dispatch(frame.Event, frame.Data)
	}
}

// dispatch delivers data to every listener of eventName, preserving the
// arrival order per event.
func (b *Bridge) dispatch(eventName string, data json.RawMessage) {
	b.mu.Lock()
	ls := make([]*listener, len(b.listeners[eventName]))
	copy(ls, b.listeners[eventName])
	b.mu.Unlock()

	pushTo(ls, data)
}

func (b *Bridge) removeListenerLocked(eventName string, target *listener) {
	ls := b.listeners[eventName]
	for i, l := range ls {
		if l == target {
			b.listeners[eventName] = append(ls[:i], ls[i+1:]...)
			break
		}
	}
	if len(b.listeners[eventName]) == 0 {
		delete(b.listeners, eventName)
	}
}

// detachAllLocked empties the listener registry and returns what was
// registered so the caller can deliver final lifecycle events.
func (b *Bridge) detachAllLocked() map[string][]*listener {
	detached := b.listeners
	b.listeners = make(map[string][]*listener)
	return detached
}

func pushTo(ls []*listener, data json.RawMessage) {
	for _, l := range ls {
		l.push(data)
	}
}

func finishAll(detached map[string][]*listener) {
	for _, ls := range detached {
		for _, l := range ls {
			l.finish()
		}
	}
}
