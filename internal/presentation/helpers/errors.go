package helpers

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

const (
	KeyValidation        = "error.validation"
	KeyBodyInvalid       = "error.body.invalid"
	KeyIdInvalid         = "error.id.invalid"
	KeyNotFound          = "error.not_found"
	KeyDeleteDependents  = "error.delete.dependents"
	KeySortInvalid       = "error.sort.invalid"
	KeyPaginationInvalid = "error.pagination.invalid"
	KeyUnauthorized      = "error.unauthorized"
	KeyForbidden         = "error.forbidden"
	KeySetupRequired     = "error.setup.required"
	KeySetupCompleted    = "error.setup.completed"
	KeyLoginInvalid      = "error.login.invalid"
	KeyDeleteLastAdmin   = "error.delete.last_admin"
	KeyInternal          = "error.internal"
	KeyExportFormat      = "error.export.format"
	KeyNameTaken         = "error.name.taken"
)

func NewError(statusCode int, translationKey string, message string) *presentationProtocols.ErrorResponse {
	return &presentationProtocols.ErrorResponse{
		Code:           statusCode,
		Message:        message,
		TranslationKey: translationKey,
	}
}

func CreateErrorResponse(statusCode int, translationKey string, message string) *presentationProtocols.HttpResponse {
	return CreateResponse(NewError(statusCode, translationKey, message), statusCode)
}

func InvalidBodyResponse() *presentationProtocols.HttpResponse {
	return CreateErrorResponse(http.StatusBadRequest, KeyBodyInvalid, "invalid body request")
}

func InvalidIdResponse(name string) *presentationProtocols.HttpResponse {
	return CreateErrorResponse(http.StatusBadRequest, KeyIdInvalid, fmt.Sprintf("invalid %s format", name))
}

func NotFoundResponse(entity string) *presentationProtocols.HttpResponse {
	return CreateErrorResponse(http.StatusNotFound, KeyNotFound, fmt.Sprintf("%s not found", entity))
}

func DependentsResponse(entity string) *presentationProtocols.HttpResponse {
	return CreateErrorResponse(http.StatusConflict, KeyDeleteDependents,
		fmt.Sprintf("the %s is still referenced by other entries and cannot be deleted", entity))
}

// InternalErrorResponse logs err and hides it from the client.
func InternalErrorResponse(message string, err error) *presentationProtocols.HttpResponse {
	log.WithError(err).Error(message)
	return CreateErrorResponse(http.StatusInternalServerError, KeyInternal, message)
}
