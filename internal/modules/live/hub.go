package live

import (
	"sync"
	"time"

	"campusspaces/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is one reservation lifecycle change pushed to connected dashboards.
type Event struct {
	Type        string              `json:"type"` // reservation_created | reservation_status_changed
	Reservation *domain.Reservation `json:"reservation"`
	At          time.Time           `json:"at"`
}

// Hub fans reservation events out to connected admin dashboard sockets.
// One connection per user; a reconnect displaces the previous socket.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// Broadcast pushes one event to every connected socket. It holds the write
// lock for the whole fan-out: gorilla/websocket allows only one concurrent
// writer per connection, so concurrent broadcasts must be serialized.
func (h *Hub) Broadcast(ev Event) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(ev); err != nil {
			_ = conn.Close()
			delete(h.connections, userID)
		}
	}
}

func (h *Hub) ConnectedCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}

// ReservationCreated implements the reservation module's EventSink.
func (h *Hub) ReservationCreated(r *domain.Reservation) {
	h.Broadcast(Event{Type: "reservation_created", Reservation: r, At: time.Now().UTC()})
}

func (h *Hub) ReservationStatusChanged(r *domain.Reservation) {
	h.Broadcast(Event{Type: "reservation_status_changed", Reservation: r, At: time.Now().UTC()})
}
