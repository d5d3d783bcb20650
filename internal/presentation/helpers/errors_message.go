package helpers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	log "github.com/sirupsen/logrus"

	"github.com/familyledger/finance-backend/internal/domain/models"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

var (
	translatorOnce sync.Once
	translator     ut.Translator

	validatorOnce   sync.Once
	sharedValidator *validator.Validate
)

func Translator() ut.Translator {
	translatorOnce.Do(func() {
		eng := en.New()
		uni := ut.New(eng, eng)
		translator, _ = uni.GetTranslator("en")
	})
	return translator
}

// Validator returns the shared validator. It reports json field names, has
// english messages and knows the "cron" tag.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		sharedValidator = newValidator()
	})
	return sharedValidator
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("cron", func(fl validator.FieldLevel) bool {
		_, err := models.ParseCronSchedule(fl.Field().String())
		return err == nil
	}); err != nil {
		log.WithError(err).Fatal("Error registering cron validation")
	}

	trans := Translator()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.WithError(err).Fatal("Error registering validator translations")
	}
	_ = validate.RegisterTranslation("cron", trans, func(ut ut.Translator) error {
		return ut.Add("cron", "{0} must be a cron expression with six fields", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("cron", fe.Field())
		return t
	})

	return validate
}

func GetErrorMessages(validate *validator.Validate, errs error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(errs, &validationErrors) {
		return errs.Error()
	}

	trans := Translator()
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, e.Translate(trans))
	}
	return strings.Join(errorMessages, ", ")
}

// Validate answers 422 with the translated messages when body is invalid.
func Validate(validate *validator.Validate, body any) *presentationProtocols.HttpResponse {
	if err := validate.Struct(body); err != nil {
		return CreateErrorResponse(http.StatusUnprocessableEntity, KeyValidation, GetErrorMessages(validate, err))
	}
	return nil
}
