package assistant

import (
	"net/http"

	"pgconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the chat endpoint. Callers attach the per-IP
// rate limiter to the group; the endpoint itself needs no auth.
func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	group := v1.Group("/assistant")
	{
		group.POST("/chat", h.Chat)
	}
}

func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required")
		return
	}

	reply := h.service.Respond(c.Request.Context(), req.Message)
	response.Success(c, http.StatusOK, reply)
}
