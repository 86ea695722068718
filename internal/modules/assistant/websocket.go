package assistant

import (
	"log"
	"net/http"
	"time"

	"pgconnect/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// dev default; production fronts this with CORS-checked origins
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler runs an interactive assistant session over a websocket.
type WSHandler struct {
	service    *Service
	jwtService *jwt.Service
}

func NewWSHandler(service *Service, jwtService *jwt.Service) *WSHandler {
	return &WSHandler{service: service, jwtService: jwtService}
}

type wsQuestion struct {
	Message string `json:"message"`
}

type wsAnswer struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Source  Source `json:"source,omitempty"`
}

// HandleWebSocket upgrades the connection and answers each incoming
// message in turn.
//
// Endpoint: GET /ws/assistant?token=JWT_TOKEN
//
// Auth runs over the query parameter since websocket clients can't set
// headers on the upgrade request.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("assistant_ws_upgrade_failed error=%v", err)
		return
	}
	defer conn.Close()

	log.Printf("assistant_ws_connected user_id=%d", claims.UserID)

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	_ = conn.WriteJSON(wsAnswer{
		Type:    "greeting",
		Message: "Hi! Ask me anything about finding a PG.",
	})

	for {
		var q wsQuestion
		if err := conn.ReadJSON(&q); err != nil {
			log.Printf("assistant_ws_closed user_id=%d", claims.UserID)
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		reply := h.service.Respond(c.Request.Context(), q.Message)
		if err := conn.WriteJSON(wsAnswer{
			Type:    "answer",
			Message: reply.Message,
			Source:  reply.Source,
		}); err != nil {
			return
		}
	}
}
