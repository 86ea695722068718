package booking

import (
	"errors"
	"net/http"

	"pgconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the booking endpoints; callers wrap the group
// with JWT + student-role middleware.
func (h *Handler) RegisterRoutes(student *gin.RouterGroup) {
	group := student.Group("/bookings")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("/:id/confirm", h.Confirm)
		group.POST("/:id/cancel", h.Cancel)
	}
}

func (h *Handler) Create(c *gin.Context) {
	studentID := c.GetInt64("user_id")

	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	intent, err := h.service.CreateIntent(c.Request.Context(), studentID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPropertyNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		case errors.Is(err, ErrPropertyClosed):
			response.Error(c, http.StatusConflict, "PROPERTY_CLOSED", "Property is not accepting bookings")
		default:
			response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to create booking request")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": intent})
}

func (h *Handler) List(c *gin.Context) {
	studentID := c.GetInt64("user_id")
	response.Success(c, http.StatusOK, gin.H{"bookings": h.service.ListByStudent(studentID)})
}

func (h *Handler) Get(c *gin.Context) {
	studentID := c.GetInt64("user_id")

	intent, err := h.service.GetIntent(studentID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": intent})
}

func (h *Handler) Confirm(c *gin.Context) {
	studentID := c.GetInt64("user_id")

	intent, err := h.service.Confirm(studentID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": intent})
}

func (h *Handler) Cancel(c *gin.Context) {
	studentID := c.GetInt64("user_id")

	intent, err := h.service.Cancel(studentID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": intent})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrIntentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking request not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking request")
	case errors.Is(err, ErrIntentExpired):
		response.Error(c, http.StatusGone, "EXPIRED", "Booking request has expired")
	case errors.Is(err, ErrNotPending):
		response.Error(c, http.StatusConflict, "NOT_PENDING", "Booking request was already resolved")
	default:
		response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Booking operation failed")
	}
}
