package routes

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/adapters"
	"github.com/familyledger/finance-backend/internal/setup/factory"
)

func AssetRoutes(server *http.ServeMux, app *factory.App) {
	handleList(server, app, "asset", adapters.AdaptRoute(factory.MakeGetAssetsController(app)))

	server.Handle("POST /v2/asset", authenticated(app,
		adapters.AdaptRoute(factory.MakeCreateAssetController(app)),
	))

	handleUpdate(server, app, "/v2/asset", adapters.AdaptRoute(factory.MakeUpdateAssetController(app)))

	server.Handle("DELETE /v2/asset/{id}", authenticated(app,
		adapters.AdaptRoute(factory.MakeDeleteAssetController(app)),
	))
}
