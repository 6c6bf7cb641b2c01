package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/access"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

const forbiddenPage = "<h1>403 Forbidden</h1>"

// AdminPage serves the global admin surface to editors and bounces
// everyone else back to the home page.
func (h *Handler) AdminPage(c *gin.Context) {
	_, role, _ := h.Sessions.Identity(c.Request.Context())
	if !access.CanWrite(role, access.PartitionResource(model.PartitionGlobal)) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.File(filepath.Join(h.publicDir, "admin.html"))
}

// UserManagementPage serves the account-management surface, editors only.
func (h *Handler) UserManagementPage(c *gin.Context) {
	_, role, _ := h.Sessions.Identity(c.Request.Context())
	if !access.CanWrite(role, access.Accounts()) {
		c.Data(http.StatusForbidden, "text/html; charset=utf-8", []byte(forbiddenPage))
		return
	}
	c.File(filepath.Join(h.publicDir, "usermanagement.html"))
}

// RegionalAdminPage serves a continent's admin surface to that
// continent's role or an editor. Paths that merely look like a
// regional admin page fall back to plain static serving.
func (h *Handler) RegionalAdminPage(c *gin.Context) {
	p := c.Param("partition")
	if !model.ValidContinent(p) {
		h.Static(c)
		return
	}
	_, role, _ := h.Sessions.Identity(c.Request.Context())
	if !access.CanWrite(role, access.PartitionResource(model.Partition(p))) {
		c.Data(http.StatusForbidden, "text/html; charset=utf-8", []byte(forbiddenPage))
		return
	}
	c.File(filepath.Join(h.publicDir, p, "admin.html"))
}
