package middlewares

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/presentation/helpers"
)

// IsAllowed lets the request through only when the session carries role.
func IsAllowed(next http.Handler, role string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := helpers.IdentityFromContext(r.Context())
		if identity == nil {
			writeError(w, http.StatusUnauthorized, helpers.KeyUnauthorized, "missing or invalid session")
			return
		}

		if !identity.HasRole(role) {
			writeError(w, http.StatusForbidden, helpers.KeyForbidden, "user not allowed to access this resource")
			return
		}

		next.ServeHTTP(w, r)
	})
}
