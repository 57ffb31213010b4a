package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"postforge/services"
)

// AuthMiddleware rejects any request that does not carry a bearer token the
// identity provider recognizes. It runs before the body is read; the caller
// only ever sees the generic message.
func AuthMiddleware(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil || identity.UserID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("userID", identity.UserID)
		c.Set("userEmail", identity.Email)
		c.Next()
	}
}
