package router

import (
	"github.com/oksasatya/devpad-api/internal/application"
	"github.com/oksasatya/devpad-api/internal/container"
	pginfra "github.com/oksasatya/devpad-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/devpad-api/internal/interface/http"
	"github.com/oksasatya/devpad-api/internal/router/modules"
	"github.com/oksasatya/devpad-api/pkg/helpers"
)

// InitModules builds every feature module from the container singletons
// and registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(container.GetPGPool())
	projects := pginfra.NewProjectRepository(container.GetPGPool())

	hasher := &helpers.BcryptHasher{Cost: cfg.BcryptCost}
	authSvc := application.NewAuthService(users, container.GetTokenStore(), hasher, logger)
	projectSvc := application.NewProjectService(projects, logger)

	r.Add(modules.NewAccountModule(handlers.NewAccountHandler(authSvc, logger)))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger)))

	// Liveness lives outside the versioned API group.
	r.Engine.GET("/healthz", handlers.NewHealthHandler(container.GetPGPool(), container.GetRedis()).Healthz)
}
