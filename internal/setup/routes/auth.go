package routes

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/adapters"
	"github.com/familyledger/finance-backend/internal/setup/factory"
	"github.com/familyledger/finance-backend/internal/setup/middlewares"
)

// AuthRoutes are registered on the root server, outside of /api.
func AuthRoutes(server *http.ServeMux, app *factory.App) {
	server.Handle("POST /auth/login", adapters.AdaptRoute(factory.MakeLoginController(app)))
	server.Handle("POST /auth/logout", adapters.AdaptRoute(factory.MakeLogoutController(app)))
	server.Handle("GET /auth/me", adapters.AdaptRoute(factory.MakeMeController()))
}

func FirstRunRoutes(server *http.ServeMux, app *factory.App) {
	server.Handle("GET /v1/setup/stage", adapters.AdaptRoute(factory.MakeGetStageController(app)))
	server.Handle("POST /v1/setup/user", adapters.AdaptRoute(factory.MakeSetupUserController(app)))
	server.Handle("POST /v1/setup/workspace", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeSetupWorkspaceController(app)),
	))
}
