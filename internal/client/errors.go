package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches every 401 answer, see APIError.Is.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a 4xx or 5xx answer of the server.
type APIError struct {
	Status         int
	Message        string
	TranslationKey string
}

func (e *APIError) Error() string {
	if e.TranslationKey != "" {
		return fmt.Sprintf("%d %s (%s)", e.Status, e.Message, e.TranslationKey)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// Localized returns the message registered for the translation key, or the
// server message when the key is unknown.
func (e *APIError) Localized() string {
	return Translate(e.TranslationKey, e.Message)
}

// IsDependents reports a delete refused because other entries reference
// the entity.
func IsDependents(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.TranslationKey == "error.delete.dependents"
}
