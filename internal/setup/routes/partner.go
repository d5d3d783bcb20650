package routes

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/adapters"
	"github.com/familyledger/finance-backend/internal/setup/factory"
)

func PartnerRoutes(server *http.ServeMux, app *factory.App) {
	handleList(server, app, "partner", adapters.AdaptRoute(factory.MakeGetPartnersController(app)))

	server.Handle("POST /v2/partner", authenticated(app,
		adapters.AdaptRoute(factory.MakeCreatePartnerController(app)),
	))

	handleUpdate(server, app, "/v2/partner", adapters.AdaptRoute(factory.MakeUpdatePartnerController(app)))

	server.Handle("DELETE /v2/partner/{id}", authenticated(app,
		adapters.AdaptRoute(factory.MakeDeletePartnerController(app)),
	))
}
