package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"postforge/services"
)

// respondServiceError maps a service failure onto the HTTP error taxonomy.
// parseMessage is the operation-specific message for an unparseable model
// reply; operations with a safe fallback never reach it.
func respondServiceError(c *gin.Context, err error, parseMessage string) {
	switch {
	case errors.Is(err, services.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
	case errors.Is(err, services.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment required. Please add credits to your workspace."})
	case errors.Is(err, services.ErrParse):
		c.JSON(http.StatusInternalServerError, gin.H{"error": parseMessage})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred processing your request. Please try again."})
	}
}
