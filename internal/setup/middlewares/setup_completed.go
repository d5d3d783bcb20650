package middlewares

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	log "github.com/sirupsen/logrus"
)

// SetupCompleted blocks the application until the first-run setup is done.
func SetupCompleted(next http.Handler, stages *helpers.SetupStageResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stage, err := stages.Stage(r.Context())
		if err != nil {
			log.WithError(err).Error("Error resolving setup stage")
			writeError(w, http.StatusInternalServerError, helpers.KeyInternal, "an error occurred when checking the setup")
			return
		}

		if stage != models.SetupStageComplete {
			writeError(w, http.StatusForbidden, helpers.KeySetupRequired, "the setup has not been completed yet")
			return
		}

		next.ServeHTTP(w, r)
	})
}
