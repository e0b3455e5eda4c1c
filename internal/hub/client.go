package hub

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	// Buffer size for outbound messages
	sendBufferSize = 64
)

// subscription is the client's inbound filter message. A zero MinStars
// receives everything, including non-play audit records.
type subscription struct {
	MinStars  int  `json:"min_stars"`
	PlaysOnly bool `json:"plays_only"`
}

// Client is one dashboard connection receiving emitted recommendations.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan models.BetRecommendation
	hub  *Hub
	log  zerolog.Logger

	subMu sync.RWMutex
	sub   subscription
}

func newClient(id string, conn *websocket.Conn, h *Hub, log zerolog.Logger) *Client {
	return &Client{
		ID:   id,
		conn: conn,
		send: make(chan models.BetRecommendation, sendBufferSize),
		hub:  h,
		log:  log.With().Str("client_id", id).Logger(),
	}
}

// trySend queues a recommendation without blocking. A full buffer means the
// client is too slow; the message is dropped for that client only.
func (c *Client) trySend(rec models.BetRecommendation) bool {
	select {
	case c.send <- rec:
		return true
	default:
		return false
	}
}

// wants applies the client's subscription filter.
func (c *Client) wants(rec models.BetRecommendation) bool {
	c.subMu.RLock()
	defer c.subMu.RUnlock()

	if c.sub.PlaysOnly && !rec.IsPlay {
		return false
	}
	return rec.StarRating >= c.sub.MinStars
}

// ReadPump consumes subscription updates from the peer until it disconnects.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var sub subscription
		if err := c.conn.ReadJSON(&sub); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn().Err(err).Msg("unexpected close")
			}
			return
		}

		c.subMu.Lock()
		c.sub = sub
		c.subMu.Unlock()

		c.log.Debug().Int("min_stars", sub.MinStars).Bool("plays_only", sub.PlaysOnly).Msg("subscription updated")
	}
}

// WritePump pushes queued recommendations and pings to the peer.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case rec, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(rec); err != nil {
				c.log.Warn().Err(err).Msg("write error")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
