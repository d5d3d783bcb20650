package setup

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/config"
	"github.com/familyledger/finance-backend/internal/setup/factory"
	"github.com/familyledger/finance-backend/internal/setup/middlewares"
)

// Server builds the API handler. Middlewares run outermost first: request
// log, panic recovery, cors, then the session cookie.
func Server(app *factory.App, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	config.SetupRoutes(mux, app)

	var handler http.Handler = mux
	handler = middlewares.Session(app.Tokens, cfg.Auth.CookieName)(handler)
	handler = middlewares.CorsMiddleware(handler, cfg.Cors.AllowedOrigins)
	handler = middlewares.RecoveryMiddleware(handler)
	handler = middlewares.RequestLogger(handler)

	return handler
}
