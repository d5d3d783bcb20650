package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase/usecasetest"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/controllertest"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	"github.com/familyledger/finance-backend/internal/utils"
)

func newSession(t *testing.T) (*helpers.SessionCookie, *utils.AccessTokenUtil) {
	tokens, err := utils.NewAccessTokenUtil("secret", 24*time.Hour)
	require.NoError(t, err)
	return &helpers.SessionCookie{Tokens: tokens, Name: "finance-session", Secure: true}, tokens
}

func newUsers(t *testing.T) *usecasetest.Users {
	users := usecasetest.NewUsers()
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	users.Put(models.User{Name: "admin", PasswordHash: hash, Roles: []string{models.RoleAdmin, models.RoleUser}})
	return users
}

func TestLoginSetsSessionCookie(t *testing.T) {
	session, tokens := newSession(t)
	controller := NewLoginController(newUsers(t), session)

	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/auth/login",
		map[string]any{"name": "admin", "password": "correct horse"}, nil))
	require.Equal(t, http.StatusOK, response.StatusCode)

	identity := controllertest.Decode[models.Identity](t, response)
	assert.Equal(t, "admin", identity.Name)
	assert.Equal(t, []string{models.RoleAdmin, models.RoleUser}, identity.Roles)

	cookies, err := http.ParseSetCookie(response.Header.Get("Set-Cookie"))
	require.NoError(t, err)
	assert.Equal(t, "finance-session", cookies.Name)
	assert.True(t, cookies.HttpOnly)
	assert.Equal(t, 86400, cookies.MaxAge)

	decoded, err := tokens.DecodeToken(cookies.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", decoded.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	session, _ := newSession(t)
	controller := NewLoginController(newUsers(t), session)

	for _, name := range []string{"admin", "nobody"} {
		response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/auth/login",
			map[string]any{"name": name, "password": "battery staple"}, nil))
		controllertest.RequireError(t, response, http.StatusUnauthorized, helpers.KeyLoginInvalid)
		assert.Empty(t, response.Header.Get("Set-Cookie"))
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	session, _ := newSession(t)

	response := NewLogoutController(session).Handle(controllertest.NewRequest(http.MethodPost, "/auth/logout", nil, nil))
	require.Equal(t, http.StatusNoContent, response.StatusCode)

	cookie, err := http.ParseSetCookie(response.Header.Get("Set-Cookie"))
	require.NoError(t, err)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestMe(t *testing.T) {
	controller := NewMeController()

	response := controller.Handle(controllertest.NewRequest(http.MethodGet, "/auth/me", nil, nil))
	controllertest.RequireError(t, response, http.StatusNotFound, helpers.KeyNotFound)

	request := controllertest.NewRequest(http.MethodGet, "/auth/me", nil, nil)
	request.Req = request.Req.WithContext(helpers.WithIdentity(request.Req.Context(),
		&models.Identity{Id: "1", Name: "admin", Roles: []string{models.RoleAdmin}}))
	response = controller.Handle(request)
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "admin", controllertest.Decode[models.Identity](t, response).Name)
}
