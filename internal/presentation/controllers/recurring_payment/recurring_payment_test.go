package recurring_payment

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/recurring"
	"github.com/familyledger/finance-backend/internal/domain/usecase/usecasetest"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/controllertest"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
)

var now = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func clock() time.Time {
	return now
}

type fixture struct {
	workspaces   *usecasetest.Workspaces
	payments     *usecasetest.RecurringPayments
	transactions *usecasetest.Transactions
	references   usecasetest.References
	service      *recurring.Service
	workspace    models.Workspace
	asset        primitive.ObjectID
	wallet       primitive.ObjectID
}

func newFixture() *fixture {
	f := &fixture{
		workspaces:   usecasetest.NewWorkspaces(),
		payments:     usecasetest.NewRecurringPayments(),
		transactions: usecasetest.NewTransactions(),
		references:   usecasetest.References{},
		asset:        primitive.NewObjectID(),
		wallet:       primitive.NewObjectID(),
	}
	f.service = recurring.NewService(f.transactions, f.transactions, f.transactions, f.payments)
	f.workspace = f.workspaces.Put(models.Workspace{Name: "Private"})
	f.references.Add(f.workspace.Id, f.asset, f.wallet)
	return f
}

func (f *fixture) body(extra map[string]any) map[string]any {
	body := map[string]any{
		"name":         "Rent",
		"amount":       "-900",
		"assetId":      f.asset.Hex(),
		"walletId":     f.wallet.Hex(),
		"cronSchedule": "0 0 0 1 * *",
	}
	for key, value := range extra {
		body[key] = value
	}
	return body
}

func (f *fixture) create(t *testing.T) models.RecurringPayment {
	t.Helper()

	controller := NewCreateRecurringPaymentController(f.payments, f.workspaces.ById(), f.references, f.service, clock)
	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/recurring",
		f.body(map[string]any{"workspaceId": f.workspace.Id.Hex()}), nil))
	require.Equal(t, http.StatusCreated, response.StatusCode)
	return controllertest.Decode[models.RecurringPayment](t, response)
}

func TestCreateRecurringPaymentGeneratesTransactions(t *testing.T) {
	f := newFixture()
	created := f.create(t)

	assert.Equal(t, models.RecurringPaymentStatusActive, created.Status)
	require.NotNil(t, created.NextPaymentDate)
	assert.True(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC).Equal(*created.NextPaymentDate))

	generated := f.transactions.All()
	require.Len(t, generated, 12)
	for _, tx := range generated {
		require.NotNil(t, tx.SourceId)
		assert.Equal(t, created.Id, *tx.SourceId)
		assert.Equal(t, "-900.00", tx.Amount.StringFixed(2))
	}

	stored := f.payments.Get(created.Id)
	require.NotNil(t, stored.LastTransactionDate)
	assert.True(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC).Equal(*stored.LastTransactionDate))
}

func TestCreateRecurringPaymentInvalidCron(t *testing.T) {
	f := newFixture()
	controller := NewCreateRecurringPaymentController(f.payments, f.workspaces.ById(), f.references, f.service, clock)

	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/recurring",
		f.body(map[string]any{"workspaceId": f.workspace.Id.Hex(), "cronSchedule": "every month"}), nil))
	controllertest.RequireError(t, response, http.StatusUnprocessableEntity, helpers.KeyValidation)
	assert.Empty(t, f.payments.All())
}

func TestCreateRecurringPaymentNotAfterBeforeNotBefore(t *testing.T) {
	f := newFixture()
	controller := NewCreateRecurringPaymentController(f.payments, f.workspaces.ById(), f.references, f.service, clock)

	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/recurring",
		f.body(map[string]any{
			"workspaceId": f.workspace.Id.Hex(),
			"notBefore":   "2026-06-01T00:00:00Z",
			"notAfter":    "2026-03-01T00:00:00Z",
		}), nil))
	controllertest.RequireError(t, response, http.StatusUnprocessableEntity, helpers.KeyValidation)
}

func TestGetRecurringPaymentsComputesNextPaymentDate(t *testing.T) {
	f := newFixture()
	f.create(t)
	controller := NewGetRecurringPaymentsController(f.payments.ByParent(), clock)

	response := controller.Handle(controllertest.NewRequest(http.MethodGet, "/api/v2/recurring/workspace/"+f.workspace.Id.Hex(), nil,
		map[string]string{"workspace_id": f.workspace.Id.Hex()}))
	require.Equal(t, http.StatusOK, response.StatusCode)

	page := controllertest.Decode[models.PagedResponse[models.RecurringPayment]](t, response)
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].NextPaymentDate)
}

func TestUpdateRecurringPaymentKeepsTransactions(t *testing.T) {
	f := newFixture()
	created := f.create(t)
	controller := NewUpdateRecurringPaymentController(f.payments, f.payments.ById(), f.references, clock)

	response := controller.Handle(controllertest.NewRequest(http.MethodPatch, "/api/v2/recurring",
		f.body(map[string]any{"id": created.Id.Hex(), "amount": "-950"}), nil))
	require.Equal(t, http.StatusOK, response.StatusCode)

	stored := f.payments.Get(created.Id)
	assert.Equal(t, "-950.00", stored.Amount.StringFixed(2))
	assert.NotNil(t, stored.LastTransactionDate)
	for _, tx := range f.transactions.All() {
		assert.Equal(t, "-900.00", tx.Amount.StringFixed(2))
	}
}

func TestUpdatePayments(t *testing.T) {
	f := newFixture()
	created := f.create(t)

	update := NewUpdateRecurringPaymentController(f.payments, f.payments.ById(), f.references, clock)
	response := update.Handle(controllertest.NewRequest(http.MethodPatch, "/api/v2/recurring",
		f.body(map[string]any{"id": created.Id.Hex(), "amount": "-950"}), nil))
	require.Equal(t, http.StatusOK, response.StatusCode)

	modified := f.transactions.All()[0]
	modified.UserModified = true
	_, err := f.transactions.Update(t.Context(), &modified)
	require.NoError(t, err)

	controller := NewUpdatePaymentsController(f.payments.ById(), f.service, clock)
	response = controller.Handle(controllertest.NewRequest(http.MethodPost,
		"/api/v2/recurring/"+created.Id.Hex()+"/updatePayments", nil,
		map[string]string{"id": created.Id.Hex()}))
	require.Equal(t, http.StatusOK, response.StatusCode)

	result := controllertest.Decode[models.PaymentUpdate](t, response)
	assert.Len(t, result.Delete, 11)
	assert.Len(t, result.Create, 11)

	all := f.transactions.All()
	require.Len(t, all, 12)
	for _, tx := range all {
		if tx.Id == modified.Id {
			assert.Equal(t, "-900.00", tx.Amount.StringFixed(2))
			continue
		}
		assert.Equal(t, "-950.00", tx.Amount.StringFixed(2))
	}
}

func TestUpdatePaymentsInvalidFlag(t *testing.T) {
	f := newFixture()
	created := f.create(t)
	controller := NewUpdatePaymentsController(f.payments.ById(), f.service, clock)

	response := controller.Handle(controllertest.NewRequest(http.MethodPost,
		"/api/v2/recurring/"+created.Id.Hex()+"/updatePayments?overwriteModified=maybe", nil,
		map[string]string{"id": created.Id.Hex()}))
	controllertest.RequireError(t, response, http.StatusBadRequest, helpers.KeyValidation)
}

func TestDeleteRecurringPaymentReleasesTransactions(t *testing.T) {
	f := newFixture()
	created := f.create(t)

	booked := f.transactions.All()[0]
	f.transactions.Booked = map[primitive.ObjectID]bool{booked.Id: true}

	controller := NewDeleteRecurringPaymentController(f.payments, f.payments.ById(), f.transactions)
	response := controller.Handle(controllertest.NewRequest(http.MethodDelete, "/api/v2/recurring/"+created.Id.Hex(), nil,
		map[string]string{"id": created.Id.Hex()}))
	require.Equal(t, http.StatusNoContent, response.StatusCode)

	assert.Nil(t, f.payments.Get(created.Id))
	remaining := f.transactions.All()
	require.Len(t, remaining, 1)
	assert.Equal(t, booked.Id, remaining[0].Id)
	assert.Nil(t, remaining[0].SourceId)
}

func TestDeleteRecurringPaymentNotFound(t *testing.T) {
	f := newFixture()
	controller := NewDeleteRecurringPaymentController(f.payments, f.payments.ById(), f.transactions)

	id := primitive.NewObjectID().Hex()
	response := controller.Handle(controllertest.NewRequest(http.MethodDelete, "/api/v2/recurring/"+id, nil,
		map[string]string{"id": id}))
	controllertest.RequireError(t, response, http.StatusNotFound, helpers.KeyNotFound)
}
