package realtime

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/websocket"
)

// Conn is one live, bidirectional connection to the event channel.
type Conn interface {
	Send(frame Frame) error
	Receive() (Frame, error)
	Close() error
}

// Transport dials a Conn. The bridge tries its transports in preference
// order and the first one that connects wins.
type Transport interface {
	Name() string
	Dial(ctx context.Context, rawURL, token string) (Conn, error)
}

// WebSocketTransport dials the backend over a websocket, carrying the
// access token as a query parameter the way the backend negotiates auth.
type WebSocketTransport struct{}

func (WebSocketTransport) Name() string { return "websocket" }

func (WebSocketTransport) Dial(ctx context.Context, rawURL, token string) (Conn, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse socket url: %w", err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return nil, fmt.Errorf("unsupported socket scheme %q", u.Scheme)
	}
	if !strings.HasSuffix(u.Path, "/ws") {
		u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	origin := "http://localhost/"
	cfg, err := websocket.NewConfig(u.String(), origin)
	if err != nil {
		return nil, fmt.Errorf("configure websocket: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		cfg.Dialer = &net.Dialer{Deadline: deadline}
	}

	ws, err := websocket.DialConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("dial websocket: %w", err)
	}
	return &wsConn{ws: ws}, nil
}

type wsConn struct {
	ws *websocket.Conn
}

func (c *wsConn) Send(frame Frame) error {
	return websocket.JSON.Send(c.ws, frame)
}

func (c *wsConn) Receive() (Frame, error) {
	var frame Frame
	err := websocket.JSON.Receive(c.ws, &frame)
	return frame, err
}

func (c *wsConn) Close() error {
	return c.ws.Close()
}
