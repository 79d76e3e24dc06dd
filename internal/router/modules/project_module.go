package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/devpad-api/internal/container"
	handlers "github.com/oksasatya/devpad-api/internal/interface/http"
	"github.com/oksasatya/devpad-api/internal/interface/middleware"
)

// ProjectModule wires the project resource under /v1/projects.
// Every route requires a bearer token.
type ProjectModule struct {
	Handler *handlers.ProjectHandler
}

func NewProjectModule(h *handlers.ProjectHandler) *ProjectModule {
	return &ProjectModule{Handler: h}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.Use(middleware.Auth(container.GetTokenStore()))
	{
		projects.GET("", m.Handler.Index)
		projects.POST("", m.Handler.Store)
		projects.GET("/:id", m.Handler.Show)
		projects.PUT("/:id", m.Handler.Update)
		projects.PATCH("/:id", m.Handler.Update)
		projects.DELETE("/:id", m.Handler.Destroy)
	}
}
