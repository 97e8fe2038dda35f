// Package events pushes change notifications to connected clients over a
// websocket so an open dashboard refreshes when a record changes. Handlers
// publish an event after each successful mutation; clients subscribe to the
// logical collections they render.
package events

import (
	"log/slog"
	"sync"
	"time"
)

// Topics mirror the logical collections of the store.
const (
	TopicSettings  = "settings"
	TopicShots     = "shots"
	TopicWeights   = "weights"
	TopicDailyLogs = "daily_logs"
	TopicFoodItems = "food_items"
	TopicGrocery   = "grocery"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is one change notification. Date is set for day-scoped records so a
// client can ignore changes outside its selected date.
type Event struct {
	Topic  string      `json:"topic"`
	Action string      `json:"action"`
	Date   string      `json:"date,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Time   int64       `json:"time"`
}

// Hub fans events out to registered clients. A client with no explicit
// subscriptions receives every topic.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event

	mutex   sync.RWMutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 16),
		clients:    make(map[*Client]bool),
	}
}

// Run processes registration and broadcast requests until the process
// exits. Start it once, in its own goroutine.
func (hub *Hub) Run() {
	for {
		select {
		case client := <-hub.register:
			hub.mutex.Lock()
			hub.clients[client] = true
			hub.mutex.Unlock()
			slog.Debug("websocket client registered", "clients", hub.ClientCount())

		case client := <-hub.unregister:
			hub.mutex.Lock()
			if _, ok := hub.clients[client]; ok {
				delete(hub.clients, client)
				close(client.send)
			}
			hub.mutex.Unlock()
			slog.Debug("websocket client unregistered", "clients", hub.ClientCount())

		case event := <-hub.broadcast:
			hub.deliver(event)
		}
	}
}

func (hub *Hub) deliver(event Event) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for client := range hub.clients {
		if !client.wants(event.Topic) {
			continue
		}
		select {
		case client.send <- event:
		default:
			// Slow consumer: drop it rather than block every other client.
			delete(hub.clients, client)
			close(client.send)
		}
	}
}

// Publish queues an event for delivery. It never blocks the caller; if the
// hub's buffer is full the event is dropped, since clients resynchronize by
// refetching anyway.
func (hub *Hub) Publish(topic, action, date string, data interface{}) {
	event := Event{
		Topic:  topic,
		Action: action,
		Date:   date,
		Data:   data,
		Time:   time.Now().UnixMilli(),
	}
	select {
	case hub.broadcast <- event:
	default:
		slog.Warn("dropping change event, broadcast buffer full", "topic", topic)
	}
}

func (hub *Hub) ClientCount() int {
	hub.mutex.RLock()
	defer hub.mutex.RUnlock()
	return len(hub.clients)
}
