package middlewares

import (
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/familyledger/finance-backend/internal/presentation/helpers"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.WithFields(log.Fields{
					"panic":      err,
					"stack":      string(debug.Stack()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": w.Header().Get(RequestIdHeader),
				}).Error("Recovered from panic while serving request")

				writeError(w, http.StatusInternalServerError, helpers.KeyInternal,
					"an unexpected error occurred, please try again in a few moments")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
