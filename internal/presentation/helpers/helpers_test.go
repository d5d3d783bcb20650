package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyledger/finance-backend/internal/domain/models"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

func decodeError(t *testing.T, response *presentationProtocols.HttpResponse) presentationProtocols.ErrorResponse {
	t.Helper()
	data, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var body presentationProtocols.ErrorResponse
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestGetPaginationDefaults(t *testing.T) {
	pagination, response := GetPagination(url.Values{}, models.AssetSortFields)
	require.Nil(t, response)
	assert.Equal(t, 0, pagination.Page)
	assert.Equal(t, models.DefaultPageSize, pagination.Size)
	assert.Empty(t, pagination.Sort)
}

func TestGetPaginationParsesSort(t *testing.T) {
	query := url.Values{}
	query.Set("page", "2")
	query.Set("size", "50")
	query.Add("sort[]", `{"field":"name","direction":"Descending"}`)
	query.Add("sort[]", `{"field":"code"}`)

	pagination, response := GetPagination(query, models.AssetSortFields)
	require.Nil(t, response)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 50, pagination.Size)
	assert.Equal(t, []models.SortOrder{
		{Field: "name", Direction: models.SortDescending},
		{Field: "code", Direction: models.SortAscending},
	}, pagination.Sort)
}

func TestGetPaginationRejectsInvalidInput(t *testing.T) {
	cases := map[string]struct {
		query url.Values
		key   string
	}{
		"negative page": {url.Values{"page": {"-1"}}, KeyPaginationInvalid},
		"size too big":  {url.Values{"size": {"501"}}, KeyPaginationInvalid},
		"size zero":     {url.Values{"size": {"0"}}, KeyPaginationInvalid},
		"bad json":      {url.Values{"sort[]": {"name"}}, KeySortInvalid},
		"unknown field": {url.Values{"sort[]": {`{"field":"password"}`}}, KeySortInvalid},
		"bad direction": {url.Values{"sort[]": {`{"field":"name","direction":"up"}`}}, KeySortInvalid},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, response := GetPagination(tc.query, models.AssetSortFields)
			require.NotNil(t, response)
			assert.Equal(t, http.StatusBadRequest, response.StatusCode)
			assert.Equal(t, tc.key, decodeError(t, response).TranslationKey)
		})
	}
}

type cronBody struct {
	Name     string `json:"name" validate:"required,min=1,max=5"`
	Schedule string `json:"cronSchedule" validate:"required,cron"`
}

func TestValidateUsesJsonNames(t *testing.T) {
	response := Validate(Validator(), cronBody{Name: "too long name", Schedule: "0 0 0 1 * *"})
	require.NotNil(t, response)
	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)

	body := decodeError(t, response)
	assert.Equal(t, KeyValidation, body.TranslationKey)
	assert.Contains(t, body.Message, "name")
}

func TestValidateCron(t *testing.T) {
	assert.Nil(t, Validate(Validator(), cronBody{Name: "rent", Schedule: "0 0 0 1 * *"}))
	assert.Nil(t, Validate(Validator(), cronBody{Name: "gym", Schedule: "0 0 18 * * 1-7"}))
	assert.Nil(t, Validate(Validator(), cronBody{Name: "church", Schedule: "0 0 10 * * 7"}))

	response := Validate(Validator(), cronBody{Name: "rent", Schedule: "0 0 1 * *"})
	require.NotNil(t, response)
	assert.Contains(t, decodeError(t, response).Message, "cronSchedule must be a cron expression")
}

func TestCreateResponseWithoutBody(t *testing.T) {
	response := CreateResponse(nil, http.StatusNoContent)
	data, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Empty(t, response.Header.Get("Content-Type"))
}
