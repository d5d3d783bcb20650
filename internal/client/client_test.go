package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/presentation/protocols"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNewRejectsRelativeUrl(t *testing.T) {
	_, err := New("localhost:8080")
	assert.Error(t, err)
}

func TestListSendsPagingAndSort(t *testing.T) {
	workspaceId := primitive.NewObjectID()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/asset/workspace/{workspace_id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, workspaceId.Hex(), r.PathValue("workspace_id"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))
		assert.Equal(t, []string{
			`{"field":"name","direction":"desc"}`,
			`{"field":"code","direction":"asc"}`,
		}, r.URL.Query()["sort[]"])

		writeJSON(w, http.StatusOK, models.NewPagedResponse(2, 10, 21, []models.Asset{{Name: "Euro", Code: "EUR"}}))
	})
	c := newTestClient(t, mux)

	page, err := c.Assets(context.Background(), workspaceId, Query{
		Page: 2,
		Size: 10,
		Sort: []models.SortOrder{
			{Field: "name", Direction: models.SortDescending},
			{Field: "code", Direction: models.SortAscending},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.EqualValues(t, 21, page.TotalElements)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "EUR", page.Data[0].Code)
}

func TestApiErrorIsTranslated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/v2/asset/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, protocols.ErrorResponse{
			Code:           http.StatusConflict,
			Message:        "the asset is still referenced by other entries and cannot be deleted",
			TranslationKey: "error.delete.dependents",
		})
	})
	c := newTestClient(t, mux)

	err := c.DeleteAsset(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.True(t, IsDependents(err))
	assert.False(t, errors.Is(err, ErrUnauthorized))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "The entry is used by other entries and cannot be deleted", apiErr.Localized())
}

func TestUnknownTranslationKeyFallsBackToMessage(t *testing.T) {
	apiErr := &APIError{Status: http.StatusBadRequest, Message: "raw message", TranslationKey: "error.unknown"}
	assert.Equal(t, "raw message", apiErr.Localized())
}

func TestUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/workspace", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, protocols.ErrorResponse{
			Code:           http.StatusUnauthorized,
			Message:        "login required",
			TranslationKey: "error.unauthorized",
		})
	})
	c := newTestClient(t, mux)

	_, err := c.Workspaces(context.Background(), Query{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNonJsonErrorBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/workspace", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})
	c := newTestClient(t, mux)

	_, err := c.Workspaces(context.Background(), Query{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	c, err := New(server.URL)
	require.NoError(t, err)
	server.Close()

	_, err = c.Workspaces(context.Background(), Query{})
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestLoginKeepsSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "secret-password" {
			writeJSON(w, http.StatusUnauthorized, protocols.ErrorResponse{Code: 401, TranslationKey: "error.login.invalid"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "finance-session", Value: "token", Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusOK, models.Identity{Name: body.Name, Roles: []string{models.RoleAdmin}})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("finance-session")
		if err != nil {
			writeJSON(w, http.StatusNotFound, protocols.ErrorResponse{Code: 404, TranslationKey: "error.not_found"})
			return
		}
		assert.Equal(t, "token", cookie.Value)
		writeJSON(w, http.StatusOK, models.Identity{Name: "admin", Roles: []string{models.RoleAdmin}})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	_, err := c.Me(ctx)
	require.Error(t, err)

	_, err = c.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	identity, err := c.Login(ctx, "admin", "secret-password")
	require.NoError(t, err)
	assert.True(t, identity.HasRole(models.RoleAdmin))

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", me.Name)
}

func TestCreateTransactionSendsDecimalAmount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v2/transaction", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "-500", body["amount"])
		assert.Equal(t, "OPEN", body["status"])

		writeJSON(w, http.StatusCreated, models.Transaction{
			Id:     primitive.NewObjectID(),
			Name:   "Rent",
			Amount: decimal.NewFromInt(-500),
			Status: models.TransactionStatusOpen,
		})
	})
	c := newTestClient(t, mux)

	tx, err := c.CreateTransaction(context.Background(), &models.Transaction{
		Name:   "Rent",
		Amount: decimal.NewFromInt(-500),
		Status: models.TransactionStatusOpen,
	})
	require.NoError(t, err)
	assert.False(t, tx.Id.IsZero())
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(-500)))
}

func TestUpdatePaymentsSendsFlag(t *testing.T) {
	id := primitive.NewObjectID()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v2/recurring/{id}/updatePayments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, id.Hex(), r.PathValue("id"))
		assert.Equal(t, "true", r.URL.Query().Get("overwriteModified"))
		writeJSON(w, http.StatusOK, models.PaymentUpdate{
			Delete: []models.Transaction{{Name: "old"}},
			Create: []models.Transaction{{Name: "new"}, {Name: "new"}},
		})
	})
	c := newTestClient(t, mux)

	update, err := c.UpdatePayments(context.Background(), id, true)
	require.NoError(t, err)
	assert.Len(t, update.Delete, 1)
	assert.Len(t, update.Create, 2)
}

func TestSetupStage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/setup/stage", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.SetupStageCreateWorkspace)
	})
	c := newTestClient(t, mux)

	stage, err := c.SetupStage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SetupStageCreateWorkspace, stage)
}
