package routes

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/adapters"
	"github.com/familyledger/finance-backend/internal/setup/factory"
)

func WorkspaceRoutes(server *http.ServeMux, app *factory.App) {
	server.Handle("GET /v2/workspace", authenticated(app,
		adapters.AdaptRoute(factory.MakeGetWorkspacesController(app)),
	))

	server.Handle("POST /v2/workspace", authenticated(app,
		adapters.AdaptRoute(factory.MakeCreateWorkspaceController(app)),
	))

	handleUpdate(server, app, "/v2/workspace", adapters.AdaptRoute(factory.MakeUpdateWorkspaceController(app)))

	server.Handle("DELETE /v2/workspace/{id}", authenticated(app,
		adapters.AdaptRoute(factory.MakeDeleteWorkspaceController(app)),
	))
}
