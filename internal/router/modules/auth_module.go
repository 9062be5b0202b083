package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lakshanchamidu/Blog-Platform/internal/container"
	handlers "github.com/lakshanchamidu/Blog-Platform/internal/interface/http"
	"github.com/lakshanchamidu/Blog-Platform/internal/interface/middleware"
)

// AuthModule wires registration and login.
// Public: POST /api/auth/register, POST /api/auth/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
