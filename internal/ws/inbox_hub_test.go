package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestInboxHubBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewInboxHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/inbox", InboxHandler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/inbox"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Give the hub a moment to process the registration.
	time.Sleep(50 * time.Millisecond)

	sent := InboxPayload{
		ID:      "contact-1",
		Name:    "Somchai Jaidee",
		Email:   "somchai@example.com",
		Company: "Thai Industrial Co., Ltd.",
		Date:    time.Now().UTC(),
	}
	hub.Broadcast(sent)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message: %v", err)
	}

	var got InboxPayload
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode payload %q: %v", data, err)
	}
	if got.ID != sent.ID || got.Name != sent.Name || got.Email != sent.Email {
		t.Errorf("payload mismatch: got %+v, want %+v", got, sent)
	}
}

func TestInboxHubBroadcastNilHub(t *testing.T) {
	var hub *InboxHub
	// Must not panic when nothing is wired up.
	hub.Broadcast(InboxPayload{ID: "x"})
}

func TestInboxHubDropsGoneClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewInboxHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/inbox", InboxHandler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/inbox"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	conn.Close()
	time.Sleep(50 * time.Millisecond)

	// Broadcasting after the client disconnected must not block or panic.
	hub.Broadcast(InboxPayload{ID: "after-close"})
}
