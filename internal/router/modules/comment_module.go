package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/lakshanchamidu/Blog-Platform/internal/container"
	handlers "github.com/lakshanchamidu/Blog-Platform/internal/interface/http"
	"github.com/lakshanchamidu/Blog-Platform/internal/interface/middleware"
	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
)

// CommentModule wires comment routes.
// Public: GET /api/comments/:blogId
// Protected: POST /api/comments
type CommentModule struct {
	Handler *handlers.CommentHandler
	JWT     *helpers.JWTManager
}

func NewCommentModule(h *handlers.CommentHandler, jwt *helpers.JWTManager) *CommentModule {
	return &CommentModule{Handler: h, JWT: jwt}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/comments/:blogId", m.Handler.ListByBlog)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetLogger()))
	{
		auth.POST("/comments", m.Handler.Add)
	}
}
