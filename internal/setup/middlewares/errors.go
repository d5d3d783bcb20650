package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/familyledger/finance-backend/internal/presentation/helpers"
)

func writeError(w http.ResponseWriter, statusCode int, translationKey string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(helpers.NewError(statusCode, translationKey, message))
}
