package hub

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		return true
	},
}

// Hub maintains the set of connected dashboard clients and fans emitted
// recommendations out to them.
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan models.BetRecommendation
	register   chan *Client
	unregister chan *Client

	log zerolog.Logger

	// Metrics
	totalConnections int64
	totalMessages    int64
	metricsMu        sync.Mutex
}

// NewHub creates a new Hub instance
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan models.BetRecommendation, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.With().Str("component", "hub").Logger(),
	}
}

// Run starts the hub's main loop until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	h.log.Info().Msg("hub started")

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case rec := <-h.broadcast:
			h.fanOut(rec)
		}
	}
}

// Broadcast queues a recommendation for delivery to all matching clients.
// Non-blocking: if the hub is saturated the recommendation is dropped from
// the live feed (it is still persisted and published upstream).
func (h *Hub) Broadcast(rec models.BetRecommendation) {
	select {
	case h.broadcast <- rec:
	default:
		h.log.Warn().Str("recommendation_id", rec.RecommendationID).Msg("broadcast buffer full, dropping")
	}
}

// HandleWebSocket upgrades an HTTP connection and attaches it to the hub.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade error")
		return
	}

	c := newClient(uuid.New().String(), conn, h, h.log)
	h.Register(c)

	go c.WritePump()
	go c.ReadPump()

	h.log.Info().Str("client_id", c.ID).Msg("websocket connection established")
}

// Register adds a client to the hub
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// Metrics returns cumulative hub counters
func (h *Hub) Metrics() (connections, messages int64) {
	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()
	return h.totalConnections, h.totalMessages
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	h.clients[c] = true
	h.clientsMu.Unlock()

	h.metricsMu.Lock()
	h.totalConnections++
	h.metricsMu.Unlock()
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.clientsMu.Unlock()
}

func (h *Hub) fanOut(rec models.BetRecommendation) {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	delivered := 0
	for c := range h.clients {
		if !c.wants(rec) {
			continue
		}
		if c.trySend(rec) {
			delivered++
		}
	}

	h.metricsMu.Lock()
	h.totalMessages += int64(delivered)
	h.metricsMu.Unlock()
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}

	h.log.Info().Msg("hub stopped")
}
