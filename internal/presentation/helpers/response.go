package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	header := http.Header{}
	if body == nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader(nil)),
			StatusCode: statusCode,
			Header:     header,
		}
	}

	data, err := json.Marshal(body)
	if err != nil {
		log.WithError(err).Error("Error encoding response body")
		data = []byte(`{"code":500,"message":"internal server error","translationKey":"error.internal"}`)
		statusCode = http.StatusInternalServerError
	}

	header.Set("Content-Type", "application/json")
	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: statusCode,
		Header:     header,
	}
}

// CreateFileResponse answers with a downloadable attachment.
func CreateFileResponse(data []byte, contentType string, filename string) *presentationProtocols.HttpResponse {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: http.StatusOK,
		Header:     header,
	}
}
