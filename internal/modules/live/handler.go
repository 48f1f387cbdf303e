package live

import (
	"net/http"

	"campusspaces/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// origin is enforced by the CORS middleware in front of the upgrade
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts the dashboard socket; the group must carry auth +
// admin middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/reservations", h.Stream)
}

// Stream upgrades the connection and keeps it registered until the client
// goes away. The hub pushes events; inbound frames are only read to detect
// the close.
func (h *Handler) Stream(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "WEBSOCKET_ERROR", "Failed to upgrade connection")
		return
	}

	h.hub.Register(userID, conn)

	go func() {
		defer h.hub.Unregister(userID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
