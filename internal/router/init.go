package router

import (
	"github.com/scrapbookapp/scrapbook/internal/application"
	"github.com/scrapbookapp/scrapbook/internal/container"
	"github.com/scrapbookapp/scrapbook/internal/infrastructure/postgres"
	handlers "github.com/scrapbookapp/scrapbook/internal/interface/http"
	"github.com/scrapbookapp/scrapbook/internal/interface/middleware"
	"github.com/scrapbookapp/scrapbook/internal/router/modules"
)

// InitModules builds every feature module from the container
// singletons and registers it. Called once during startup, after main
// has populated the container.
func InitModules(r *Registry) {
	repo := postgres.NewUserRepository(container.GetPGPool())
	svc := application.NewService(repo, container.GetLogger())

	sessions := container.GetSessions()
	cookies := container.GetCookies()
	logger := container.GetLogger()
	appName := container.GetConfig().AppName

	// Current-user resolution runs before every route in the group.
	r.Use(middleware.CurrentUser(sessions, svc))

	pageHandler := handlers.NewPageHandler(sessions, logger, appName)
	authHandler := handlers.NewAuthHandler(svc, sessions, cookies, logger)
	oauthHandler := handlers.NewOAuthHandler(svc, sessions, cookies,
		container.GetOAuthProvider(), container.GetStateSigner(), logger)

	r.Add(modules.NewPagesModule(pageHandler))
	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewOAuthModule(oauthHandler))
}
