package routes

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/adapters"
	"github.com/familyledger/finance-backend/internal/setup/factory"
	"github.com/familyledger/finance-backend/internal/setup/middlewares"
)

func TransactionRoutes(server *http.ServeMux, app *factory.App) {
	list := adapters.AdaptRoute(factory.MakeGetTransactionsController(app))
	booked := adapters.AdaptRoute(factory.MakeGetBookedAmountsController(app))

	server.Handle("GET /v1/transaction/workspace/{workspace_id}", authenticated(app, list))
	server.Handle("GET /v2/transaction/{first}/{second}", authenticated(app, transactionLookup(list, booked)))

	server.Handle("POST /v2/transaction", authenticated(app,
		adapters.AdaptRoute(factory.MakeCreateTransactionController(app)),
	))

	handleUpdate(server, app, "/v2/transaction", adapters.AdaptRoute(factory.MakeUpdateTransactionController(app)))

	server.Handle("DELETE /v2/transaction/{id}", authenticated(app,
		adapters.AdaptRoute(factory.MakeDeleteTransactionController(app)),
	))

	server.Handle("GET /v2/transaction/workspace/{workspace_id}/export", authenticated(app,
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeExportTransactionsController(app)),
			app.ExportTTL,
		),
	))
}

// transactionLookup serves /transaction/workspace/{workspace_id} and
// /transaction/{transaction_id}/book, two patterns the mux refuses to hold
// side by side since both match /transaction/workspace/book.
func transactionLookup(list http.Handler, booked http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first, second := r.PathValue("first"), r.PathValue("second")
		switch {
		case first == "workspace":
			r.SetPathValue("workspace_id", second)
			list.ServeHTTP(w, r)
		case second == "book":
			r.SetPathValue("transaction_id", first)
			booked.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// BookedAmountRoutes registers the booked amount routes; their list is
// served by TransactionRoutes.
func BookedAmountRoutes(server *http.ServeMux, app *factory.App) {
	server.Handle("POST /v2/transaction/{transaction_id}/book", authenticated(app,
		adapters.AdaptRoute(factory.MakeCreateBookedAmountController(app)),
	))

	handleUpdate(server, app, "/v2/bookedamount", adapters.AdaptRoute(factory.MakeUpdateBookedAmountController(app)))

	server.Handle("DELETE /v2/bookedamount/{id}", authenticated(app,
		adapters.AdaptRoute(factory.MakeDeleteBookedAmountController(app)),
	))
}
