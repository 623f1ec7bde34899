package httpHandler

import (
	"net/http"

	"station-server/usecases"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.AuthUseCase
}

func NewAuthHandler(useCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type credentialsRequest struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "handle and password are required"})
		return
	}

	_, token, err := h.useCase.Register(req.Handle, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "handle and password are required"})
		return
	}

	token, err := h.useCase.Login(req.Handle, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// CurrentUser handles GET /api/auth/user. The password hash never
// serializes; the entity hides it from JSON.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	callerID, ok := CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is not valid"})
		return
	}

	user, err := h.useCase.CurrentUser(callerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
