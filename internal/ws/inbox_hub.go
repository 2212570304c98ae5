package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// InboxPayload is pushed to admin dashboards when the public contact form is
// submitted, so the inbox updates without polling.
type InboxPayload struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	Company  string    `json:"company"`
	Position string    `json:"position"`
	Date     time.Time `json:"date"`
}

// InboxHub fans contact submissions out to connected admin clients.
type InboxHub struct {
	register   chan *inboxClient
	unregister chan *inboxClient
	broadcast  chan []byte
	clients    map[*inboxClient]struct{}
}

func NewInboxHub() *InboxHub {
	return &InboxHub{
		register:   make(chan *inboxClient),
		unregister: make(chan *inboxClient),
		broadcast:  make(chan []byte, sendBufferSize),
		clients:    make(map[*inboxClient]struct{}),
	}
}

func (h *InboxHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				client.conn.Close()
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					delete(h.clients, client)
					close(client.send)
					client.conn.Close()
				}
			}
		}
	}
}

// Broadcast pushes payload to all connected clients. Safe on a nil hub so
// callers don't have to care whether the hub is wired up.
func (h *InboxHub) Broadcast(payload InboxPayload) {
	if h == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("ws: failed to marshal inbox payload")
		return
	}
	h.broadcast <- data
}

type inboxClient struct {
	hub  *InboxHub
	conn *websocket.Conn
	send chan []byte
}

func newInboxClient(hub *InboxHub, conn *websocket.Conn) *inboxClient {
	return &inboxClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *inboxClient) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *inboxClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
