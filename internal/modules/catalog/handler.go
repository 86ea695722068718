package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"pgconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	group := v1.Group("/properties")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list properties")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"properties": result.Items,
		"total":      result.Total,
		"page":       result.Page,
		"per_page":   result.PerPage,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load property")
		return
	}

	response.Success(c, http.StatusOK, detail)
}
