package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// ReservationEvent is pushed to connected admin dashboards when a new
// booking lands.
type ReservationEvent struct {
	ReservationID string    `json:"reservation_id"`
	Reference     string    `json:"reference"`
	HostelName    string    `json:"hostel_name"`
	GuestName     string    `json:"guest_name"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

var clients = make(map[*websocket.Conn]bool)
var clientsMu sync.RWMutex
var Register = make(chan *websocket.Conn)
var Unregister = make(chan *websocket.Conn)
var Events = make(chan ReservationEvent, 16)

func RunHub() {
	for {
		select {
		case conn := <-Register:
			log.Println("Admin feed client connected")
			clientsMu.Lock()
			clients[conn] = true
			clientsMu.Unlock()
		case conn := <-Unregister:
			log.Println("Admin feed client disconnected")
			clientsMu.Lock()
			delete(clients, conn)
			clientsMu.Unlock()
		case event := <-Events:
			var dead []*websocket.Conn
			clientsMu.RLock()
			for conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error pushing reservation event: %v", err)
					conn.Close()
					dead = append(dead, conn)
				}
			}
			clientsMu.RUnlock()
			if len(dead) > 0 {
				clientsMu.Lock()
				for _, conn := range dead {
					delete(clients, conn)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// PublishReservation never blocks the booking workflow; if nothing is
// draining the hub, the event is dropped.
func PublishReservation(event ReservationEvent) {
	select {
	case Events <- event:
	default:
	}
}
