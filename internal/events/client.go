package events

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single-user app served alongside its own frontend.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one websocket connection. Topics it has subscribed to filter
// delivery; an empty set means everything.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event

	mutex  sync.RWMutex
	topics map[string]bool
}

func (client *Client) wants(topic string) bool {
	client.mutex.RLock()
	defer client.mutex.RUnlock()
	if len(client.topics) == 0 {
		return true
	}
	return client.topics[topic]
}

type clientMessage struct {
	Type  string `json:"type"`
	Topic string `json:"topic,omitempty"`
}

// ServeWS upgrades the request and attaches the connection to the hub.
func (hub *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("upgrading websocket", "error", err)
		return
	}

	client := &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan Event, 64),
		topics: make(map[string]bool),
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump consumes subscribe/unsubscribe messages until the connection
// closes, then unregisters the client.
func (client *Client) readPump() {
	defer func() {
		client.hub.unregister <- client
		client.conn.Close()
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Debug("websocket read", "error", err)
			}
			return
		}

		var message clientMessage
		if err := json.Unmarshal(raw, &message); err != nil {
			slog.Debug("ignoring malformed client message", "error", err)
			continue
		}

		switch message.Type {
		case "subscribe":
			client.mutex.Lock()
			client.topics[message.Topic] = true
			client.mutex.Unlock()
		case "unsubscribe":
			client.mutex.Lock()
			delete(client.topics, message.Topic)
			client.mutex.Unlock()
		}
	}
}

// writePump forwards hub events to the connection and keeps it alive with
// pings.
func (client *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case event, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
