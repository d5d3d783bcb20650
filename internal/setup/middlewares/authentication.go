package middlewares

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	"github.com/familyledger/finance-backend/internal/utils"
)

// Session reads the identity from the session cookie when present. Anonymous
// requests pass through without identity.
func Session(tokens *utils.AccessTokenUtil, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := tokens.DecodeToken(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(helpers.WithIdentity(r.Context(), identity)))
		})
	}
}

func VerifyAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if helpers.IdentityFromContext(r.Context()) == nil {
			writeError(w, http.StatusUnauthorized, helpers.KeyUnauthorized, "missing or invalid session")
			return
		}

		next.ServeHTTP(w, r)
	})
}
