package manage

import (
	"errors"
	"net/http"
	"strconv"

	"pgconnect/internal/domain"
	"pgconnect/internal/pkg/response"
	"pgconnect/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the owner endpoints; callers wrap the group with
// JWT + owner-role middleware and supply the ownership guard for the
// per-property routes.
func (h *Handler) RegisterRoutes(owner *gin.RouterGroup, ownership gin.HandlerFunc) {
	props := owner.Group("/properties")
	{
		props.POST("", h.CreateProperty)
		props.GET("", h.ListProperties)
		props.GET("/portfolio", h.Portfolio)
		props.GET("/:id", ownership, h.GetProperty)
		props.PUT("/:id", ownership, h.UpdateProperty)
		props.DELETE("/:id", ownership, h.DeleteProperty)

		props.PUT("/:id/building", ownership, h.ConfigureBuilding)
		props.POST("/:id/building/import", ownership, h.ImportBuilding)
		props.GET("/:id/stats", ownership, h.PropertyStats)

		props.POST("/:id/tenants", ownership, h.AddTenant)
		props.PUT("/:id/tenants", ownership, h.UpdateTenant)
		props.DELETE("/:id/tenants", ownership, h.VacateTenant)
		props.POST("/:id/tenants/rent", ownership, h.ToggleRentPaid)
	}
}

func (h *Handler) CreateProperty(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property data", fieldErrors)
		return
	}

	property, err := h.service.CreateProperty(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			response.Error(c, http.StatusConflict, "DUPLICATE_NAME", "You already have a property with this name")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to register property")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"property": property})
}

func (h *Handler) ListProperties(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	properties, err := h.service.ListProperties(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list properties")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"properties": properties})
}

func (h *Handler) GetProperty(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	property, err := h.service.GetProperty(c.Request.Context(), ownerID, propertyID)
	if err != nil {
		h.writeServiceError(c, err, "GET_FAILED", "Failed to load property")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": property})
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	property, err := h.service.UpdateProperty(c.Request.Context(), ownerID, propertyID, req)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			response.Error(c, http.StatusConflict, "DUPLICATE_NAME", "You already have a property with this name")
			return
		}
		h.writeServiceError(c, err, "UPDATE_FAILED", "Failed to update property")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": property})
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), ownerID, propertyID); err != nil {
		h.writeServiceError(c, err, "DELETE_FAILED", "Failed to delete property")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ConfigureBuilding(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	var req ConfigureBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	building, err := h.service.ConfigureBuilding(c.Request.Context(), ownerID, propertyID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidLayout) {
			response.Error(c, http.StatusBadRequest, "INVALID_LAYOUT", "Building layout is invalid")
			return
		}
		h.writeServiceError(c, err, "CONFIGURE_FAILED", "Failed to configure building")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"building": building})
}

func (h *Handler) ImportBuilding(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	var doc domain.LegacyDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	building, err := h.service.ImportBuilding(c.Request.Context(), ownerID, propertyID, doc)
	if err != nil {
		if errors.Is(err, ErrEmptyDocument) {
			response.Error(c, http.StatusBadRequest, "EMPTY_DOCUMENT", "Document has no building data")
			return
		}
		h.writeServiceError(c, err, "IMPORT_FAILED", "Failed to import building")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"building": building})
}

func (h *Handler) AddTenant(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	var req AddTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.AddTenant(c.Request.Context(), ownerID, propertyID, req)
	if err != nil {
		if errors.Is(err, domain.ErrRoomFull) {
			response.Error(c, http.StatusConflict, "ROOM_FULL", "Room is at full capacity")
			return
		}
		h.writeServiceError(c, err, "ADD_TENANT_FAILED", "Failed to add tenant")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateTenant(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	var body struct {
		TenantRef
		UpdateTenantRequest
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	occupant, err := h.service.UpdateTenant(c.Request.Context(), ownerID, propertyID, body.TenantRef, body.UpdateTenantRequest)
	if err != nil {
		h.writeServiceError(c, err, "UPDATE_TENANT_FAILED", "Failed to update tenant")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tenant": occupant})
}

func (h *Handler) VacateTenant(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	var ref TenantRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.VacateTenant(c.Request.Context(), ownerID, propertyID, ref)
	if err != nil {
		h.writeServiceError(c, err, "VACATE_FAILED", "Failed to vacate tenant")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) ToggleRentPaid(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	var ref TenantRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	occupant, err := h.service.ToggleRentPaid(c.Request.Context(), ownerID, propertyID, ref)
	if err != nil {
		h.writeServiceError(c, err, "TOGGLE_RENT_FAILED", "Failed to toggle rent status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tenant": occupant})
}

func (h *Handler) PropertyStats(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	stats, err := h.service.PropertyStats(c.Request.Context(), ownerID, propertyID)
	if err != nil {
		h.writeServiceError(c, err, "STATS_FAILED", "Failed to compute stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) Portfolio(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	portfolio, err := h.service.Portfolio(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PORTFOLIO_FAILED", "Failed to compute portfolio")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"portfolio": portfolio})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, failCode, failMessage string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this property")
	case errors.Is(err, ErrNoBuilding):
		response.Error(c, http.StatusConflict, "NO_BUILDING", "Building is not configured for this property")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found in building")
	case errors.Is(err, domain.ErrOccupantNotFound):
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant not found in room")
	case errors.Is(err, domain.ErrOccupantInvalid):
		response.Error(c, http.StatusBadRequest, "INVALID_TENANT", "Tenant name and email are required")
	default:
		response.Error(c, http.StatusInternalServerError, failCode, failMessage)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return 0, false
	}
	return id, true
}
