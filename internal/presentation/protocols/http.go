package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
	Header     http.Header
}

// ErrorResponse is the body of every failed request. TranslationKey lets
// clients render a localized message.
type ErrorResponse struct {
	Code           int    `json:"code"`
	Message        string `json:"message"`
	TranslationKey string `json:"translationKey"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

type Controller interface {
	Handle(r HttpRequest) *HttpResponse
}
