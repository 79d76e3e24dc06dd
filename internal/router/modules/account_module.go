package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/devpad-api/internal/container"
	handlers "github.com/oksasatya/devpad-api/internal/interface/http"
	"github.com/oksasatya/devpad-api/internal/interface/middleware"
)

// AccountModule wires account HTTP handlers into routes
// Public: POST /v1/register, POST /v1/login
// Protected: GET /v1/user, POST /v1/logout
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetTokenStore()))
	{
		auth.GET("/user", m.Handler.Me)
		auth.POST("/logout", m.Handler.Logout)
	}
}
