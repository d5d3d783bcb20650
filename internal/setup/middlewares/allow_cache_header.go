package middlewares

import (
	"fmt"
	"net/http"
	"time"
)

// AllowCacheHeader lets the browser keep a private copy for maxAge.
func AllowCacheHeader(next http.Handler, maxAge time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(maxAge.Seconds())))
		next.ServeHTTP(w, r)
	})
}
