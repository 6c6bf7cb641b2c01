package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/access"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

const (
	ctxPartition = "partition"
	ctxActingID  = "actingUserID"
)

// globalPartition pins the request to the global partition for the
// unprefixed /api/news routes.
func (h *Handler) globalPartition() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxPartition, model.PartitionGlobal)
		c.Next()
	}
}

// continentParam resolves and validates the :partition path segment.
// Unknown partitions 404 before any handler runs.
func (h *Handler) continentParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Param("partition")
		if !model.ValidContinent(p) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		c.Set(ctxPartition, model.Partition(p))
		c.Next()
	}
}

// partitionOf returns the partition resolved by the group middleware.
func partitionOf(c *gin.Context) model.Partition {
	return c.MustGet(ctxPartition).(model.Partition)
}

// requirePartitionAccess gates a write on the current partition:
// 401 without a session, 403 with the wrong role. The store is never
// touched on denial.
func (h *Handler) requirePartitionAccess() gin.HandlerFunc {
	return h.requireWrite(func(c *gin.Context) access.Resource {
		return access.PartitionResource(partitionOf(c))
	})
}

// requireAccountAccess gates the account-management surface, which
// only editors may touch.
func (h *Handler) requireAccountAccess() gin.HandlerFunc {
	return h.requireWrite(func(c *gin.Context) access.Resource {
		return access.Accounts()
	})
}

func (h *Handler) requireWrite(resource func(*gin.Context) access.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, role, ok := h.Sessions.Identity(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if !access.CanWrite(role, resource(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Set(ctxActingID, id)
		c.Next()
	}
}
