package handler

import (
	"net/http"

	"github.com/blues/ets/internal/logic"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authLogic *logic.AuthLogic
}

// NewAuthHandler shares the AuthLogic with the auth middleware.
func NewAuthHandler(authLogic *logic.AuthLogic) *AuthHandler {
	return &AuthHandler{authLogic: authLogic}
}

// Login verifies credentials and returns a fresh session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, member, err := h.authLogic.Login(req.Username, req.Password)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Member:      newMemberResponse(member),
	})
}

// ChangePassword rotates the authenticated member's password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := actorFrom(c)
	if err := h.authLogic.ChangePassword(actor, req.CurrentPassword, req.NewPassword); err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
