package routes

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/adapters"
	"github.com/familyledger/finance-backend/internal/setup/factory"
)

func RecurringPaymentRoutes(server *http.ServeMux, app *factory.App) {
	handleList(server, app, "recurring", adapters.AdaptRoute(factory.MakeGetRecurringPaymentsController(app)))

	server.Handle("POST /v2/recurring", authenticated(app,
		adapters.AdaptRoute(factory.MakeCreateRecurringPaymentController(app)),
	))

	handleUpdate(server, app, "/v2/recurring", adapters.AdaptRoute(factory.MakeUpdateRecurringPaymentController(app)))

	server.Handle("DELETE /v2/recurring/{id}", authenticated(app,
		adapters.AdaptRoute(factory.MakeDeleteRecurringPaymentController(app)),
	))

	server.Handle("POST /v2/recurring/{id}/updatePayments", authenticated(app,
		adapters.AdaptRoute(factory.MakeUpdatePaymentsController(app)),
	))
}
