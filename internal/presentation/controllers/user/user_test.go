package user

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase/usecasetest"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/controllertest"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	"github.com/familyledger/finance-backend/internal/utils"
)

func TestCreateUserHashesPassword(t *testing.T) {
	users := usecasetest.NewUsers()
	controller := NewCreateUserController(users, users)

	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/user",
		map[string]any{"name": "alice", "password": "correct horse", "roles": []string{"user"}}, nil))
	require.Equal(t, http.StatusCreated, response.StatusCode)

	body := controllertest.Decode[map[string]any](t, response)
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "password_hash")

	stored, err := users.FindByName(t.Context(), "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "correct horse"))
}

func TestCreateUserNameTaken(t *testing.T) {
	users := usecasetest.NewUsers()
	users.Put(models.User{Name: "alice", Roles: []string{models.RoleUser}})
	controller := NewCreateUserController(users, users)

	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/user",
		map[string]any{"name": "alice", "password": "correct horse", "roles": []string{"user"}}, nil))
	controllertest.RequireError(t, response, http.StatusConflict, helpers.KeyNameTaken)
}

func TestCreateUserUnknownRole(t *testing.T) {
	users := usecasetest.NewUsers()
	controller := NewCreateUserController(users, users)

	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/user",
		map[string]any{"name": "alice", "password": "correct horse", "roles": []string{"root"}}, nil))
	controllertest.RequireError(t, response, http.StatusUnprocessableEntity, helpers.KeyValidation)
}

func TestUpdateUserKeepsPassword(t *testing.T) {
	users := usecasetest.NewUsers()
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	alice := users.Put(models.User{Name: "alice", PasswordHash: hash, Roles: []string{models.RoleUser}})
	controller := NewUpdateUserController(users, users.ById(), users, users)

	response := controller.Handle(controllertest.NewRequest(http.MethodPatch, "/api/v2/user",
		map[string]any{"id": alice.Id.Hex(), "name": "alice2", "roles": []string{"user"}}, nil))
	require.Equal(t, http.StatusOK, response.StatusCode)

	stored := users.Get(alice.Id)
	assert.Equal(t, "alice2", stored.Name)
	assert.Equal(t, hash, stored.PasswordHash)
}

func TestDemotingLastAdmin(t *testing.T) {
	users := usecasetest.NewUsers()
	admin := users.Put(models.User{Name: "admin", Roles: []string{models.RoleAdmin, models.RoleUser}})
	controller := NewUpdateUserController(users, users.ById(), users, users)

	response := controller.Handle(controllertest.NewRequest(http.MethodPut, "/api/v2/user",
		map[string]any{"id": admin.Id.Hex(), "name": "admin", "roles": []string{"user"}}, nil))
	controllertest.RequireError(t, response, http.StatusConflict, helpers.KeyDeleteLastAdmin)
}

func TestDeleteUser(t *testing.T) {
	users := usecasetest.NewUsers()
	admin := users.Put(models.User{Name: "admin", Roles: []string{models.RoleAdmin}})
	bob := users.Put(models.User{Name: "bob", Roles: []string{models.RoleUser}})
	controller := NewDeleteUserController(users, users.ById(), users)

	response := controller.Handle(controllertest.NewRequest(http.MethodDelete, "/api/v2/user/"+admin.Id.Hex(), nil,
		map[string]string{"id": admin.Id.Hex()}))
	controllertest.RequireError(t, response, http.StatusConflict, helpers.KeyDeleteLastAdmin)

	response = controller.Handle(controllertest.NewRequest(http.MethodDelete, "/api/v2/user/"+bob.Id.Hex(), nil,
		map[string]string{"id": bob.Id.Hex()}))
	assert.Equal(t, http.StatusNoContent, response.StatusCode)
	assert.Len(t, users.All(), 1)
}

func TestGetUsers(t *testing.T) {
	users := usecasetest.NewUsers()
	users.Put(models.User{Name: "admin", Roles: []string{models.RoleAdmin}})

	response := NewGetUsersController(users).Handle(controllertest.NewRequest(http.MethodGet, "/api/v2/user", nil, nil))
	require.Equal(t, http.StatusOK, response.StatusCode)
	page := controllertest.Decode[models.PagedResponse[models.User]](t, response)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "admin", page.Data[0].Name)
}
