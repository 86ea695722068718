package middleware

import (
	"net/http"
	"strconv"

	"pgconnect/internal/repository"

	"github.com/gin-gonic/gin"
)

// OwnershipChecker provides middleware to verify resource ownership
type OwnershipChecker struct {
	propertyRepo *repository.PropertyRepository
}

// NewOwnershipChecker creates a new ownership checker
func NewOwnershipChecker(propertyRepo *repository.PropertyRepository) *OwnershipChecker {
	return &OwnershipChecker{propertyRepo: propertyRepo}
}

// CheckPropertyOwnership verifies the user owns the property
// Expects property ID in URL param "id"
func (oc *OwnershipChecker) CheckPropertyOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"},
			})
			return
		}

		propertyIDStr := c.Param("id")
		propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "INVALID_ID", "message": "Invalid property ID"},
			})
			return
		}

		property, err := oc.propertyRepo.GetByID(c.Request.Context(), propertyID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "Property not found"},
			})
			return
		}

		if property.OwnerID != userID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "You don't own this property"},
			})
			return
		}

		c.Next()
	}
}
