package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/lakshanchamidu/Blog-Platform/internal/container"
	handlers "github.com/lakshanchamidu/Blog-Platform/internal/interface/http"
	"github.com/lakshanchamidu/Blog-Platform/internal/interface/middleware"
	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
)

// CategoryModule wires category routes.
// Public: GET /api/category
// Protected: POST /api/category
type CategoryModule struct {
	Handler *handlers.CategoryHandler
	JWT     *helpers.JWTManager
}

func NewCategoryModule(h *handlers.CategoryHandler, jwt *helpers.JWTManager) *CategoryModule {
	return &CategoryModule{Handler: h, JWT: jwt}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/category", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetLogger()))
	{
		auth.POST("/category", m.Handler.Create)
	}
}
