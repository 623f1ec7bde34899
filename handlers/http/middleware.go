package httpHandler

import (
	"net/http"

	"station-server/auth"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the request header carrying the opaque auth token.
const TokenHeader = "x-auth-token"

const userIDKey = "userID"

// AuthRequired verifies the token header and stores the resolved user ID
// in the request context. Every mutating station route and the current-user
// route sit behind this middleware.
func AuthRequired(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "no token, authorization denied",
			})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "token is not valid",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CallerID returns the authenticated user ID attached by AuthRequired.
func CallerID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}
