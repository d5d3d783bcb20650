package routes

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/adapters"
	"github.com/familyledger/finance-backend/internal/setup/factory"
)

func WalletRoutes(server *http.ServeMux, app *factory.App) {
	handleList(server, app, "wallet", adapters.AdaptRoute(factory.MakeGetWalletsController(app)))

	server.Handle("POST /v2/wallet", authenticated(app,
		adapters.AdaptRoute(factory.MakeCreateWalletController(app)),
	))

	handleUpdate(server, app, "/v2/wallet", adapters.AdaptRoute(factory.MakeUpdateWalletController(app)))

	server.Handle("DELETE /v2/wallet/{id}", authenticated(app,
		adapters.AdaptRoute(factory.MakeDeleteWalletController(app)),
	))
}
