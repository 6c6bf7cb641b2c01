package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/users"
)

// ListUsers returns every account's id and role. Hashes never appear.
func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Users.List())
}

// CreateUser adds an account. All three fields are required.
func (h *Handler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	info, err := h.Users.Create(req.ID, req.Password, req.Role)
	switch {
	case errors.Is(err, users.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
	case errors.Is(err, users.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
	default:
		c.JSON(http.StatusCreated, info)
	}
}

// UpdateUser renames an account, changes its role, or resets its
// password. Omitted (or empty) fields stay as they are.
func (h *Handler) UpdateUser(c *gin.Context) {
	originalID := c.Param("id")

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	info, err := h.Users.Update(originalID, req.ID, req.Password, req.Role)
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, users.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"message": "New user ID already in use"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
	default:
		c.JSON(http.StatusOK, info)
	}
}

// DeleteUser removes an account. Deleting the account the session is
// logged in as is refused.
func (h *Handler) DeleteUser(c *gin.Context) {
	actingID := c.GetString(ctxActingID)

	err := h.Users.Delete(c.Param("id"), actingID)
	switch {
	case errors.Is(err, users.ErrSelfDeletion):
		c.JSON(http.StatusForbidden, gin.H{"message": "Cannot delete your own account"})
	case errors.Is(err, users.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
	default:
		c.Status(http.StatusNoContent)
	}
}
