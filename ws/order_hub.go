package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
)

// OrderHub fans order events out to subscribers grouped into rooms, one
// room per restaurant. A restaurant dashboard joins its own room and
// receives "new_order" events as customers check out.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan roomEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	db         *gorm.DB
}

type subscription struct {
	Conn   *websocket.Conn
	RoomID uint
	UserID uint
}

type roomEvent struct {
	RoomID  uint
	Payload Event
}

// Event is the wire envelope pushed to subscribers.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func NewOrderHub(db *gorm.DB) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan roomEvent, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		db:         db,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RoomID] == nil {
				h.clients[sub.RoomID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RoomID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RoomID][sub.Conn]; ok {
				delete(h.clients[sub.RoomID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RoomID] {
				if err := conn.WriteJSON(ev.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RoomID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// EmitToRoom queues an event for everyone in the room. Best-effort: if the
// hub is backed up the event is dropped rather than blocking the caller.
func (h *OrderHub) EmitToRoom(roomID uint, event string, payload any) {
	select {
	case h.broadcast <- roomEvent{RoomID: roomID, Payload: Event{Event: event, Data: payload}}:
	default:
		log.Printf("ws: dropping %s event for room %d, hub busy", event, roomID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/restaurants/:id/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid restaurant id"})
		return
	}

	userIDVal, _ := c.Get("userId")
	userID, _ := userIDVal.(uint)

	var rest entity.Restaurant
	if err := h.db.Select("id").First(&rest, uint(restID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "restaurant not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RoomID: rest.ID, UserID: userID}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive drains inbound frames so pings and closes are handled; the
// order stream is one-directional.
func (h *OrderHub) keepAlive(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
