package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ErrNotConnected is reported when a command is issued while no target is
// attached.
var ErrNotConnected = errors.New("bridge: not connected")

const eventBuffer = 256

// Options configure a websocket bridge connection.
type Options struct {
	URL            string
	DialTimeout    time.Duration
	ReconnectDelay time.Duration
	Logger         *slog.Logger
	// OnMessage observes every decoded inbound message before it is applied.
	OnMessage func(Message)
}

// Conn is a Client backed by a websocket to the instrumented target. It keeps
// redialing until its context ends.
type Conn struct {
	*Cache
	opts   Options
	logger *slog.Logger
	events chan Event

	mu     sync.Mutex
	ws     *websocket.Conn
	closed bool
}

func NewConn(opts Options) *Conn {
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 5 * time.Second
	}
	if opts.ReconnectDelay <= 0 {
		opts.ReconnectDelay = 2 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Conn{
		Cache:  NewCache(),
		opts:   opts,
		logger: logger.With("component", "bridge", "url", opts.URL),
		events: make(chan Event, eventBuffer),
	}
}

func (c *Conn) Events() <-chan Event { return c.events }

// Run connects and pumps notifications until ctx is done. The events channel
// is closed when Run returns.
func (c *Conn) Run(ctx context.Context) error {
	defer c.shutdown()
	for {
		err := c.serve(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			c.logger.Warn("bridge connection lost", "error", err)
			if !c.emit(ctx, Error{Message: err.Error()}) {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.opts.ReconnectDelay):
		}
	}
}

func (c *Conn) serve(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, c.opts.DialTimeout)
	ws, _, err := websocket.DefaultDialer.DialContext(dialCtx, c.opts.URL, nil)
	cancel()
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.opts.URL, err)
	}
	c.setConn(ws)
	defer c.setConn(nil)
	defer ws.Close()
	stop := context.AfterFunc(ctx, func() { _ = ws.Close() })
	defer stop()

	c.logger.Info("bridge connected")
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return errors.New("bridge: target disconnected")
			}
			return fmt.Errorf("read: %w", err)
		}
		msg, err := Decode(data)
		if err != nil {
			c.logger.Warn("dropping message", "error", err)
			continue
		}
		ev, err := msg.Event()
		if err != nil {
			c.logger.Warn("dropping message", "error", err)
			continue
		}
		if c.opts.OnMessage != nil {
			c.opts.OnMessage(msg)
		}
		c.Apply(msg)
		if !c.emit(ctx, ev) {
			return nil
		}
	}
}

// Reload asks the target to reload and re-instrument itself.
func (c *Conn) Reload() {
	c.send(Message{Type: CommandReload})
}

func (c *Conn) UpdateProperty(uuid, property string, value any) {
	c.send(Message{Type: CommandUpdateProperty, UUID: uuid, Property: property, Value: value})
}

func (c *Conn) send(m Message) {
	data, err := Encode(m)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.emitLocked(Error{Message: err.Error()})
		return
	}
	if c.ws == nil {
		c.emitLocked(Error{Message: ErrNotConnected.Error()})
		return
	}
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		c.logger.Warn("send failed", "command", m.Type, "error", err)
		c.emitLocked(Error{Message: fmt.Sprintf("send %s: %v", m.Type, err)})
	}
}

func (c *Conn) emit(ctx context.Context, ev Event) bool {
	select {
	case c.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// emitLocked reports a command failure without blocking the caller, which is
// usually the goroutine draining the channel.
func (c *Conn) emitLocked(ev Event) {
	if c.closed {
		return
	}
	select {
	case c.events <- ev:
	default:
		c.logger.Warn("event buffer full, dropping", "kind", ev.Kind())
	}
}

func (c *Conn) setConn(ws *websocket.Conn) {
	c.mu.Lock()
	c.ws = ws
	c.mu.Unlock()
}

func (c *Conn) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	close(c.events)
}
