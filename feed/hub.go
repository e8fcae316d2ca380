// Package feed exposes the running game over WebSocket
// Clients receive state snapshots and may send the same controls as the local player
package feed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/events"
	"github.com/lixenwraith/snake-arcade/input"
)

// Path is the WebSocket endpoint
const Path = "/ws"

// Hub fans engine state out to every client and funnels their commands to the host loop
type Hub struct {
	conns    *ConnManager
	upgrader websocket.Upgrader
	commands chan input.Command

	mu   sync.Mutex
	last *StateMsg
}

// NewHub creates a hub with an empty connection set
func NewHub() *Hub {
	return &Hub{
		conns: NewConnManager(),
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		commands: make(chan input.Command, constants.CommandQueueSize),
	}
}

// Commands delivers decoded client commands; read it from the host loop
func (h *Hub) Commands() <-chan input.Command {
	return h.commands
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	return h.conns.Count()
}

// ServeHTTP upgrades the request and runs the client session
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("feed: upgrade error: %v", err)
		return
	}

	c := NewConn(ws)
	if err := c.Send(WelcomeMsg{Type: MsgWelcome, ID: c.ID}); err != nil {
		log.Printf("feed: welcome to %s: %v", c.ID, err)
	}
	h.mu.Lock()
	last := h.last
	h.mu.Unlock()
	if last != nil {
		if err := c.Send(*last); err != nil {
			log.Printf("feed: initial state to %s: %v", c.ID, err)
		}
	}

	h.conns.Add(c)
	log.Printf("feed: %s connected from %s (%d total)", c.ID, r.RemoteAddr, h.conns.Count())

	core.Go(c.WriteLoop)
	core.Go(func() {
		c.ReadLoop(h.enqueue, func(c *Conn) {
			h.conns.Remove(c.ID)
			log.Printf("feed: %s disconnected", c.ID)
		})
	})
}

// enqueue drops commands when the host loop falls behind
func (h *Hub) enqueue(cmd input.Command) {
	select {
	case h.commands <- cmd:
	default:
		log.Printf("feed: command queue full, dropping %d", cmd.Kind)
	}
}

// Broadcast sends a state snapshot to every client and keeps it for new ones
func (h *Hub) Broadcast(f engine.Frame) {
	msg := NewStateMsg(f)
	h.mu.Lock()
	h.last = &msg
	h.mu.Unlock()
	h.send(msg)
}

// send queues msg for every client; a client that cannot keep up is disconnected
func (h *Hub) send(msg any) {
	for _, c := range h.conns.Snapshot() {
		if err := c.Send(msg); err != nil {
			log.Printf("feed: dropping %s: %v", c.ID, err)
			c.Close()
			h.conns.Remove(c.ID)
		}
	}
}

// HandleEvent announces game over to every client
func (h *Hub) HandleEvent(_ engine.Frame, ev events.GameEvent) {
	if p, ok := ev.Payload.(*events.GameOverPayload); ok && ev.Type == events.EventGameOver {
		h.send(NewOverMsg(p))
	}
}

// EventTypes returns the event types this handler processes
func (h *Hub) EventTypes() []events.EventType {
	return []events.EventType{events.EventGameOver}
}

// Close disconnects every client
func (h *Hub) Close() {
	for _, c := range h.conns.Snapshot() {
		c.Close()
		h.conns.Remove(c.ID)
	}
}

// Serve listens on addr until ctx is cancelled
func (h *Hub) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("feed listen %s: %w", addr, err)
	}
	return h.ServeListener(ctx, ln)
}

// ServeListener serves on an existing listener until ctx is cancelled
func (h *Hub) ServeListener(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle(Path, h)

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	core.Go(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		h.Close()
		srv.Shutdown(shutdownCtx)
	})

	log.Printf("feed: listening on %s%s", ln.Addr(), Path)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("feed serve: %w", err)
	}
	return nil
}
