package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; the route sits behind the session guard.
		return true
	},
}

// InboxHandler upgrades an authenticated admin connection and subscribes it
// to contact-form submissions.
func InboxHandler(hub *InboxHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		client := newInboxClient(hub, conn)
		hub.register <- client

		go client.writePump()
		client.readPump()
	}
}
