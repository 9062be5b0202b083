package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/lakshanchamidu/Blog-Platform/internal/container"
	handlers "github.com/lakshanchamidu/Blog-Platform/internal/interface/http"
	"github.com/lakshanchamidu/Blog-Platform/internal/interface/middleware"
	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
)

// BlogModule wires post routes.
// Public: GET /api/blogs, GET /api/blogs/search, GET /api/blogs/:id
// Protected: POST /api/blogs, PUT/DELETE /api/blogs/:id, like and cover routes
type BlogModule struct {
	Handler *handlers.BlogHandler
	JWT     *helpers.JWTManager
}

func NewBlogModule(h *handlers.BlogHandler, jwt *helpers.JWTManager) *BlogModule {
	return &BlogModule{Handler: h, JWT: jwt}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/blogs", m.Handler.List)
	// Registered before /blogs/:id so "search" is not captured as an id.
	rg.GET("/blogs/search", m.Handler.Search)
	rg.GET("/blogs/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetLogger()))
	{
		auth.POST("/blogs", m.Handler.Create)
		auth.PUT("/blogs/:id", m.Handler.Update)
		auth.DELETE("/blogs/:id", m.Handler.Delete)
		auth.POST("/blogs/:id/like", m.Handler.Like)
		auth.DELETE("/blogs/:id/like", m.Handler.Unlike)
		auth.POST("/blogs/:id/cover", m.Handler.UploadCover)
	}
}
