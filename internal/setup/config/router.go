package config

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/factory"
	"github.com/familyledger/finance-backend/internal/setup/routes"
)

func SetupRoutes(server *http.ServeMux, app *factory.App) {
	apiServer := http.NewServeMux()
	routes.FirstRunRoutes(apiServer, app)
	routes.WorkspaceRoutes(apiServer, app)
	routes.AssetRoutes(apiServer, app)
	routes.PartnerRoutes(apiServer, app)
	routes.WalletRoutes(apiServer, app)
	routes.TransactionRoutes(apiServer, app)
	routes.BookedAmountRoutes(apiServer, app)
	routes.RecurringPaymentRoutes(apiServer, app)
	routes.UserRoutes(apiServer, app)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
	routes.AuthRoutes(server, app)
}
