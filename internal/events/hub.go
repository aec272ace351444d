package events

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mediaconv/internal/logging"
)

const sendBuffer = 64

// Hub maintains connected clients and broadcasts events to them.
type Hub struct {
	mu       sync.Mutex
	clients  map[*Client]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
	now      func() time.Time
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logging.NewComponentLogger(logger, "events"),
		now:    time.Now,
	}
}

// Publish stamps ev and queues it for every client. Clients that cannot keep
// up are disconnected.
func (h *Hub) Publish(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = h.now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		logging.WarnWithContext(h.logger, "event encode failed", "event_encode_failed",
			logging.String("type", ev.Type),
			logging.Error(err),
			logging.String(logging.FieldImpact, "event not delivered"),
		)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			h.removeLocked(client)
			h.logger.Info("dropped slow event client", logging.String("remote", client.remote))
		}
	}
}

// Subscribe registers an in-process client that receives raw event payloads
// on the returned channel until Unsubscribe is called.
func (h *Hub) Subscribe() *Client {
	client := newClient(h, nil, "local")
	h.register(client)
	return client
}

// Unsubscribe removes client and closes its channel.
func (h *Hub) Unsubscribe(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request to a websocket and streams events to it.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", logging.Error(err))
		return
	}
	client := newClient(h, conn, r.RemoteAddr)
	h.register(client)
	h.logger.Debug("event client connected", logging.String("remote", client.remote))

	go client.writePump()
	client.readPump()
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		h.removeLocked(client)
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
}
