package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/users"
)

// Login authenticates admin credentials and answers with the admin
// surface the role should land on. The failure body is identical for
// unknown users and wrong passwords.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	redirectTo, err := h.Sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		slog.Error("login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, redirectResponse{RedirectTo: redirectTo})
}

// Logout destroys the session, active or not, and always succeeds.
func (h *Handler) Logout(c *gin.Context) {
	redirectTo := h.Sessions.Logout(c.Request.Context())
	c.JSON(http.StatusOK, redirectResponse{RedirectTo: redirectTo})
}
