package client

import (
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	log "github.com/sirupsen/logrus"
)

var messages = map[string]string{
	"error.validation":         "Some fields are invalid",
	"error.body.invalid":       "The request could not be read",
	"error.id.invalid":         "The identifier is malformed",
	"error.not_found":          "The entry does not exist anymore",
	"error.delete.dependents":  "The entry is used by other entries and cannot be deleted",
	"error.sort.invalid":       "The list cannot be sorted by this column",
	"error.pagination.invalid": "Invalid page",
	"error.unauthorized":       "Please log in",
	"error.forbidden":          "You are not allowed to do this",
	"error.setup.required":     "The application is not set up yet",
	"error.setup.completed":    "The application is already set up",
	"error.login.invalid":      "Wrong user name or password",
	"error.delete.last_admin":  "The last administrator cannot be removed",
	"error.internal":           "Something went wrong on the server",
	"error.export.format":      "Unknown export format",
	"error.name.taken":         "The name is already taken",
}

var (
	translatorOnce sync.Once
	translator     ut.Translator
)

func Translator() ut.Translator {
	translatorOnce.Do(func() {
		eng := en.New()
		uni := ut.New(eng, eng)
		translator, _ = uni.GetTranslator("en")

		for key, text := range messages {
			if err := translator.Add(key, text, false); err != nil {
				log.WithError(err).WithField("key", key).Warn("Error registering translation")
			}
		}
	})
	return translator
}

// Translate looks key up, returning fallback for unknown keys.
func Translate(key string, fallback string) string {
	if key == "" {
		return fallback
	}
	text, err := Translator().T(key)
	if err != nil || text == "" {
		return fallback
	}
	return text
}
