package routes

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/setup/factory"
	"github.com/familyledger/finance-backend/internal/setup/middlewares"
)

// authenticated guards the application routes: a session is required and
// the first-run setup must be complete.
func authenticated(app *factory.App, handler http.Handler) http.Handler {
	return middlewares.VerifyAccessToken(middlewares.SetupCompleted(handler, app.Stages))
}

// handleList registers a workspace scoped list under both api versions.
func handleList(server *http.ServeMux, app *factory.App, resource string, handler http.Handler) {
	for _, version := range []string{"v1", "v2"} {
		server.Handle("GET /"+version+"/"+resource+"/workspace/{workspace_id}", authenticated(app, handler))
	}
}

// handleUpdate maps PUT and PATCH to the same full update.
func handleUpdate(server *http.ServeMux, app *factory.App, path string, handler http.Handler) {
	server.Handle("PUT "+path, authenticated(app, handler))
	server.Handle("PATCH "+path, authenticated(app, handler))
}
