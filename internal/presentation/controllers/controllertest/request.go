// Package controllertest builds controller requests and reads their responses.
package controllertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

// NewRequest builds the request a controller receives from the router.
// A nil body sends no body; pathValues fill the route wildcards.
func NewRequest(method string, target string, body any, pathValues map[string]string) presentationProtocols.HttpRequest {
	var reader io.Reader
	switch value := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(value)
	default:
		data, err := json.Marshal(value)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	for name, value := range pathValues {
		req.SetPathValue(name, value)
	}

	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

// Decode reads the json response body into a value of type T.
func Decode[T any](t *testing.T, response *presentationProtocols.HttpResponse) T {
	t.Helper()

	var value T
	require.NotNil(t, response.Body)
	require.NoError(t, json.NewDecoder(response.Body).Decode(&value))
	return value
}

// RequireError checks the status and translation key of an error response.
func RequireError(t *testing.T, response *presentationProtocols.HttpResponse, statusCode int, translationKey string) {
	t.Helper()

	require.Equal(t, statusCode, response.StatusCode)
	errorResponse := Decode[presentationProtocols.ErrorResponse](t, response)
	require.Equal(t, statusCode, errorResponse.Code)
	require.Equal(t, translationKey, errorResponse.TranslationKey)
}
