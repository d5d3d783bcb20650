package routes

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/setup/adapters"
	"github.com/familyledger/finance-backend/internal/setup/factory"
	"github.com/familyledger/finance-backend/internal/setup/middlewares"
)

// adminOnly checks the role before the setup stage.
func adminOnly(app *factory.App, handler http.Handler) http.Handler {
	return middlewares.VerifyAccessToken(
		middlewares.IsAllowed(middlewares.SetupCompleted(handler, app.Stages), models.RoleAdmin),
	)
}

func UserRoutes(server *http.ServeMux, app *factory.App) {
	server.Handle("GET /v2/user", adminOnly(app,
		adapters.AdaptRoute(factory.MakeGetUsersController(app)),
	))

	server.Handle("POST /v2/user", adminOnly(app,
		adapters.AdaptRoute(factory.MakeCreateUserController(app)),
	))

	update := adminOnly(app, adapters.AdaptRoute(factory.MakeUpdateUserController(app)))
	server.Handle("PUT /v2/user", update)
	server.Handle("PATCH /v2/user", update)

	server.Handle("DELETE /v2/user/{id}", adminOnly(app,
		adapters.AdaptRoute(factory.MakeDeleteUserController(app)),
	))
}
