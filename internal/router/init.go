package router

import (
	"github.com/ghost-labs/ghost-auth/internal/application"
	"github.com/ghost-labs/ghost-auth/internal/container"
	handlers "github.com/ghost-labs/ghost-auth/internal/interface/http"
	"github.com/ghost-labs/ghost-auth/internal/router/modules"
)

func buildAuthModule() (*modules.AuthModule, *handlers.SystemHandler) {
	cfg := container.GetConfig()

	service := application.NewService(
		container.GetUsers(),
		container.GetSessions(),
		container.GetAttempts(),
		container.GetJWT(),
		container.GetLogger(),
		cfg.MaxLoginAttempts,
		cfg.TokenTTL,
		cfg.RememberTTL,
	)
	container.SetService(service)

	handler := handlers.NewAuthHandler(service, container.GetLogger())
	system := handlers.NewSystemHandler(service, container.GetSessions(), container.GetStore())
	return modules.NewAuthModule(handler, system, container.GetJWT()), system
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	authModule, system := buildAuthModule()
	r.Add(authModule)
	r.Add(modules.NewDebugModule(system))

	// Health lives at the engine root, outside the /api group.
	r.Engine.GET("/health", system.Health)
}
