package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// Event is the envelope pushed to connected clients. Type is one of
// "new_message", "unread_count" or "notification"; clients may use the
// payload directly or treat the event purely as a refetch signal.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type directEvent struct {
	UserID uuid.UUID
	Event  Event
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var push = make(chan directEvent, 64)

// NotifyUser queues an event for the given user. It never blocks; if the
// hub is saturated or not running the event is dropped, since every event
// is only a hint to refetch from the source of truth.
func NotifyUser(userID uuid.UUID, eventType string, payload interface{}) {
	select {
	case push <- directEvent{UserID: userID, Event: Event{Type: eventType, Payload: payload}}:
	default:
		log.Printf("Websocket hub busy, dropping %s event for user %s", eventType, userID)
	}
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case ev := <-push:
			clientsMu.RLock()
			conn, ok := clients[ev.UserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(ev.Event); err != nil {
				log.Printf("Error sending %s event to client %s: %v", ev.Event.Type, ev.UserID, err)
				conn.Close()
				clientsMu.Lock()
				if cur, ok := clients[ev.UserID]; ok && cur == conn {
					delete(clients, ev.UserID)
				}
				clientsMu.Unlock()
			}
		}
	}
}
