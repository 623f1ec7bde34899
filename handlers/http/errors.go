package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"station-server/usecases"

	"github.com/gin-gonic/gin"
)

// writeError maps a domain failure to an HTTP status and a JSON error
// body. Unclassified errors are logged and answered with a generic 500 so
// no internal detail leaks.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrDuplicateHandle):
		c.JSON(http.StatusBadRequest, gin.H{"error": "handle already taken"})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, usecases.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
