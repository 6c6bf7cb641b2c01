package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/store"
)

// ListNews returns the partition's items, newest first. Public.
func (h *Handler) ListNews(c *gin.Context) {
	items, err := h.News.ListNews(partitionOf(c))
	if err != nil {
		slog.Error("listing news", "partition", partitionOf(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListCategories returns the partition's categories in insertion
// order. Public.
func (h *Handler) ListCategories(c *gin.Context) {
	names, err := h.News.ListCategories(partitionOf(c))
	if err != nil {
		slog.Error("listing categories", "partition", partitionOf(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, names)
}

// CreateNews publishes an item; the server assigns id and timestamp.
func (h *Handler) CreateNews(c *gin.Context) {
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	item, err := h.News.CreateNews(partitionOf(c), store.NewsFields{
		Heading:     req.Heading,
		Content:     req.Content,
		Source:      req.Source,
		Category:    req.Category,
		WebsiteLink: req.WebsiteLink,
	})
	if err != nil {
		slog.Error("creating news", "partition", partitionOf(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateNews merges the provided fields into an existing item. Id and
// timestamp cannot change.
func (h *Handler) UpdateNews(c *gin.Context) {
	var req newsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	item, err := h.News.UpdateNews(partitionOf(c), c.Param("id"), store.NewsUpdate{
		Heading:     req.Heading,
		Content:     req.Content,
		Source:      req.Source,
		Category:    req.Category,
		WebsiteLink: req.WebsiteLink,
	})
	if errors.Is(err, store.ErrNewsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	if err != nil {
		slog.Error("updating news", "partition", partitionOf(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteNews removes an item by id.
func (h *Handler) DeleteNews(c *gin.Context) {
	err := h.News.DeleteNews(partitionOf(c), c.Param("id"))
	if errors.Is(err, store.ErrNewsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	if err != nil {
		slog.Error("deleting news", "partition", partitionOf(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCategory appends a category and returns the updated list.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	names, err := h.News.CreateCategory(partitionOf(c), req.Category)
	if errors.Is(err, store.ErrInvalidCategory) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}
	if err != nil {
		slog.Error("creating category", "partition", partitionOf(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}
	c.JSON(http.StatusCreated, names)
}

// DeleteCategory removes a category name, refusing while any item in
// the partition still references it.
func (h *Handler) DeleteCategory(c *gin.Context) {
	err := h.News.DeleteCategory(partitionOf(c), c.Param("category"))
	switch {
	case errors.Is(err, store.ErrCategoryInUse):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category is in use"})
	case errors.Is(err, store.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case err != nil:
		slog.Error("deleting category", "partition", partitionOf(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
	default:
		c.Status(http.StatusNoContent)
	}
}
