package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans out desktop events to every connection watching that desktop.
type Hub struct {
	clients    map[string]map[*Client]bool
	mu         sync.RWMutex
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)
		case client := <-h.Unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.DesktopID]; !ok {
		h.clients[client.DesktopID] = make(map[*Client]bool)
	}
	h.clients[client.DesktopID][client] = true
	connectedClients.Inc()
	log.Printf("Client for desktop %s registered", client.DesktopID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if desktopClients, ok := h.clients[client.DesktopID]; ok {
		if _, ok := desktopClients[client]; ok {
			delete(desktopClients, client)
			close(client.send)
			connectedClients.Dec()
			if len(desktopClients) == 0 {
				delete(h.clients, client.DesktopID)
			}
			log.Printf("Client for desktop %s unregistered", client.DesktopID)
		}
	}
}

// ClientCount reports how many connections watch desktopID.
func (h *Hub) ClientCount(desktopID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[desktopID])
}

func (h *Hub) PublishEvent(desktopID string, eventData []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if desktopClients, ok := h.clients[desktopID]; ok {
		for client := range desktopClients {
			select {
			case client.send <- eventData:
			default:
				droppedMessages.Inc()
				log.Printf("WARN: Client for desktop %s send buffer is full. Dropping message.", desktopID)
			}
		}
	}
}
