package feed

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/input"
)

// ErrSlowClient is returned by Send when the client's queue is full
var ErrSlowClient = errors.New("feed: client send queue full")

// ErrClosed is returned by Send after the connection closed
var ErrClosed = errors.New("feed: connection closed")

// Conn manages a single WebSocket session
// Writes go through a bounded queue drained by WriteLoop so callers never block on the network
type Conn struct {
	ID string
	ws *websocket.Conn

	out       chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewConn creates a new connection wrapper
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID:   uuid.NewString(),
		ws:   ws,
		out:  make(chan []byte, constants.FeedSendQueueSize),
		done: make(chan struct{}),
	}
}

// Send serializes msg to JSON and queues it for WriteLoop
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case c.out <- data:
		return nil
	default:
		return ErrSlowClient
	}
}

// WriteLoop writes queued messages until the connection closes or a write times out
func (c *Conn) WriteLoop() {
	defer c.Close()
	for {
		select {
		case <-c.done:
			return
		case data := <-c.out:
			c.ws.SetWriteDeadline(time.Now().Add(constants.FeedWriteTimeout))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("feed: write to %s: %v", c.ID, err)
				return
			}
		}
	}
}

// Done is closed when the connection closes
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Close marks connection closed; safe to call more than once and concurrently with writes
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.ws.Close()
	})
}

// ReadLoop decodes control messages until the connection drops
func (c *Conn) ReadLoop(onCommand func(input.Command), onDisconnect func(*Conn)) {
	defer func() {
		onDisconnect(c)
		c.Close()
	}()

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("feed: read error for %s: %v", c.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("feed: bad message from %s: %v", c.ID, err)
			continue
		}

		cmd, ok := decodeCommand(msg)
		if !ok {
			log.Printf("feed: unknown message %q from %s", msg.Type, c.ID)
			continue
		}
		onCommand(cmd)
	}
}

// decodeCommand maps a wire message to a router command
func decodeCommand(msg ClientMessage) (input.Command, bool) {
	switch msg.Type {
	case MsgDirection:
		d, ok := engine.ParseDirection(msg.Dir)
		if !ok {
			return input.Command{}, false
		}
		return input.Command{Kind: input.CommandDirection, Dir: d}, true
	case MsgSwipe:
		return input.Command{Kind: input.CommandSwipe, DX: msg.DX, DY: msg.DY}, true
	case MsgToggle:
		return input.Command{Kind: input.CommandToggle}, true
	case MsgReset:
		return input.Command{Kind: input.CommandReset}, true
	}
	return input.Command{}, false
}

// ConnManager manages all active connections
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// Add registers a connection
func (m *ConnManager) Add(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
}

// Remove unregisters a connection
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Count returns the number of active connections
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// Snapshot returns a copy of all current connections
func (m *ConnManager) Snapshot() []*Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	return list
}
