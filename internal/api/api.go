// Package api exposes the portal's REST surface and the protected
// admin pages over gin. Every write route passes through the access
// policy exactly once, via the guard middleware.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/session"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/store"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/users"
)

// Handler bundles the stores and session authenticator behind the
// HTTP surface. It holds no state of its own.
type Handler struct {
	News      *store.NewsStore
	Users     *users.UserStore
	Sessions  *session.Authenticator
	publicDir string
	files     http.Handler
}

// NewHandler wires the handler; publicDir is the root of the static
// site (home pages, admin pages, assets).
func NewHandler(news *store.NewsStore, u *users.UserStore, s *session.Authenticator, publicDir string) *Handler {
	return &Handler{
		News:      news,
		Users:     u,
		Sessions:  s,
		publicDir: publicDir,
		files:     http.FileServer(http.Dir(publicDir)),
	}
}

// Register attaches every route to the engine. Regional API routes are
// registered once, parameterized by the :partition path segment.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/login/admin", h.Login)
	api.POST("/logout", h.Logout)
	api.GET("/health", h.Health)

	mgmt := api.Group("/users", h.requireAccountAccess())
	mgmt.GET("", h.ListUsers)
	mgmt.POST("", h.CreateUser)
	mgmt.PUT("/:id", h.UpdateUser)
	mgmt.DELETE("/:id", h.DeleteUser)

	api.GET("/export", h.requireAccountAccess(), h.Export)

	h.registerPartitionRoutes(api.Group("", h.globalPartition()))
	h.registerPartitionRoutes(api.Group("/:partition", h.continentParam()))

	r.GET("/admin.html", h.AdminPage)
	r.GET("/usermanagement.html", h.UserManagementPage)
	r.GET("/:partition/admin.html", h.RegionalAdminPage)
	r.NoRoute(h.Static)
}

func (h *Handler) registerPartitionRoutes(g *gin.RouterGroup) {
	g.GET("/news", h.ListNews)
	g.GET("/news-categories", h.ListCategories)

	guard := h.requirePartitionAccess()
	g.POST("/news", guard, h.CreateNews)
	g.PUT("/news/:id", guard, h.UpdateNews)
	g.DELETE("/news/:id", guard, h.DeleteNews)
	g.POST("/news-categories", guard, h.CreateCategory)
	g.DELETE("/news-categories/:category", guard, h.DeleteCategory)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Export dumps the whole multi-partition store, editor-only. Useful
// for backups and for moving content between deployments.
func (h *Handler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, h.News.Snapshot())
}

// Static serves the public site for anything no explicit route
// claimed. Unknown API paths stay JSON.
func (h *Handler) Static(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	h.files.ServeHTTP(c.Writer, c.Request)
}
