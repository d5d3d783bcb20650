package setup

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyledger/finance-backend/internal/domain/models"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"github.com/familyledger/finance-backend/internal/setup/config"
	"github.com/familyledger/finance-backend/internal/setup/factory"
	"github.com/familyledger/finance-backend/internal/setup/middlewares"
	"github.com/familyledger/finance-backend/internal/utils"
)

func newServer(t *testing.T) (http.Handler, *utils.AccessTokenUtil) {
	t.Helper()

	tokens, err := utils.NewAccessTokenUtil("secret", time.Hour)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.AuthConfig{CookieName: "finance-session"},
		Cors: config.CorsConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return Server(factory.NewApp(nil, nil, tokens), cfg), tokens
}

func TestApiRequiresSession(t *testing.T) {
	server, _ := newServer(t)

	for _, path := range []string{
		"/api/v2/asset/workspace/65f1c0ffee0000000000abcd",
		"/api/v1/wallet/workspace/65f1c0ffee0000000000abcd",
		"/api/v2/transaction/workspace/65f1c0ffee0000000000abcd",
		"/api/v2/transaction/65f1c0ffee0000000000abcd/book",
		"/api/v2/user",
	} {
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusUnauthorized, recorder.Code, path)
		var body presentationProtocols.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, "error.unauthorized", body.TranslationKey)
		assert.NotEmpty(t, recorder.Header().Get(middlewares.RequestIdHeader))
	}
}

func TestUsersRequireAdmin(t *testing.T) {
	server, tokens := newServer(t)

	token, err := tokens.CreateToken(&models.Identity{Id: "1", Name: "bob", Roles: []string{models.RoleUser}})
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/api/v2/user", nil)
	request.AddCookie(&http.Cookie{Name: "finance-session", Value: token})
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestMeWithSession(t *testing.T) {
	server, tokens := newServer(t)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	token, err := tokens.CreateToken(&models.Identity{Id: "1", Name: "admin", Roles: []string{models.RoleAdmin}})
	require.NoError(t, err)
	request := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	request.AddCookie(&http.Cookie{Name: "finance-session", Value: token})
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	var identity models.Identity
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&identity))
	assert.Equal(t, "admin", identity.Name)
}

func TestCorsPreflight(t *testing.T) {
	server, _ := newServer(t)

	request := httptest.NewRequest(http.MethodOptions, "/api/v2/asset", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}
