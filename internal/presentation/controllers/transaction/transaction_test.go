package transaction

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase/usecasetest"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/controllertest"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
)

type fixture struct {
	workspaces   *usecasetest.Workspaces
	transactions *usecasetest.Transactions
	references   usecasetest.References
	exports      *memoryCache
	workspace    models.Workspace
	asset        primitive.ObjectID
	wallet       primitive.ObjectID
}

func newFixture() *fixture {
	f := &fixture{
		workspaces:   usecasetest.NewWorkspaces(),
		transactions: usecasetest.NewTransactions(),
		references:   usecasetest.References{},
		exports:      &memoryCache{data: map[string][]byte{}},
		asset:        primitive.NewObjectID(),
		wallet:       primitive.NewObjectID(),
	}
	f.workspace = f.workspaces.Put(models.Workspace{Name: "Private"})
	f.references.Add(f.workspace.Id, f.asset, f.wallet)
	return f
}

func (f *fixture) body(extra map[string]any) map[string]any {
	body := map[string]any{
		"name":     "Rent",
		"amount":   "-500",
		"date":     "2026-02-01T00:00:00Z",
		"status":   "OPEN",
		"assetId":  f.asset.Hex(),
		"walletId": f.wallet.Hex(),
	}
	for key, value := range extra {
		body[key] = value
	}
	return body
}

func TestCreateTransaction(t *testing.T) {
	f := newFixture()
	controller := NewCreateTransactionController(f.transactions, f.workspaces.ById(), f.references, f.exports)

	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/transaction",
		f.body(map[string]any{"workspaceId": f.workspace.Id.Hex()}), nil))
	require.Equal(t, http.StatusCreated, response.StatusCode)

	created := controllertest.Decode[models.Transaction](t, response)
	assert.True(t, decimal.NewFromInt(-500).Equal(created.Amount))
	assert.Equal(t, models.TransactionStatusOpen, created.Status)
	assert.Equal(t, models.TransactionTypePayment, created.Type)
	assert.False(t, created.UserModified)
	assert.Nil(t, created.SourceId)

	list := NewGetTransactionsController(f.transactions.ByParent())
	response = list.Handle(controllertest.NewRequest(http.MethodGet, "/api/v2/transaction/workspace/"+f.workspace.Id.Hex(), nil,
		map[string]string{"workspace_id": f.workspace.Id.Hex()}))
	require.Equal(t, http.StatusOK, response.StatusCode)
	page := controllertest.Decode[models.PagedResponse[models.Transaction]](t, response)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "-500.00", page.Data[0].Amount.StringFixed(2))
}

func TestCreateTransactionRequiresAmount(t *testing.T) {
	f := newFixture()
	controller := NewCreateTransactionController(f.transactions, f.workspaces.ById(), f.references, f.exports)

	body := f.body(map[string]any{"workspaceId": f.workspace.Id.Hex()})
	delete(body, "amount")
	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/transaction", body, nil))
	controllertest.RequireError(t, response, http.StatusUnprocessableEntity, helpers.KeyValidation)
}

func TestCreateTransactionWalletOfOtherWorkspace(t *testing.T) {
	f := newFixture()
	foreignWallet := primitive.NewObjectID()
	f.references.Add(primitive.NewObjectID(), foreignWallet)
	controller := NewCreateTransactionController(f.transactions, f.workspaces.ById(), f.references, f.exports)

	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/transaction",
		f.body(map[string]any{"workspaceId": f.workspace.Id.Hex(), "walletId": foreignWallet.Hex()}), nil))
	controllertest.RequireError(t, response, http.StatusUnprocessableEntity, helpers.KeyValidation)
}

func (f *fixture) generated() models.Transaction {
	source := primitive.NewObjectID()
	return f.transactions.Put(models.Transaction{
		WorkspaceId: f.workspace.Id,
		Name:        "Rent",
		Amount:      decimal.NewFromInt(-500),
		Date:        time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.TransactionStatusOpen,
		Type:        models.TransactionTypePayment,
		AssetId:     f.asset,
		WalletId:    f.wallet,
		SourceId:    &source,
	})
}

func TestUpdateGeneratedTransactionMarksUserModified(t *testing.T) {
	f := newFixture()
	tx := f.generated()
	controller := NewUpdateTransactionController(f.transactions, f.transactions.ById(), f.references, f.exports)

	response := controller.Handle(controllertest.NewRequest(http.MethodPatch, "/api/v2/transaction",
		f.body(map[string]any{"id": tx.Id.Hex(), "amount": "-550"}), nil))
	require.Equal(t, http.StatusOK, response.StatusCode)

	stored := f.transactions.Get(tx.Id)
	assert.True(t, stored.UserModified)
	assert.Equal(t, tx.SourceId, stored.SourceId)
	assert.True(t, decimal.NewFromInt(-550).Equal(stored.Amount))
}

func TestUpdateGeneratedTransactionWithSameValues(t *testing.T) {
	f := newFixture()
	tx := f.generated()
	controller := NewUpdateTransactionController(f.transactions, f.transactions.ById(), f.references, f.exports)

	response := controller.Handle(controllertest.NewRequest(http.MethodPut, "/api/v2/transaction",
		f.body(map[string]any{"id": tx.Id.Hex()}), nil))
	require.Equal(t, http.StatusOK, response.StatusCode)

	stored := f.transactions.Get(tx.Id)
	assert.False(t, stored.UserModified)
	assert.True(t, tx.SameValues(stored))
}

func TestUpdateTransactionReferencingItself(t *testing.T) {
	f := newFixture()
	tx := f.generated()
	f.references.Add(f.workspace.Id, tx.Id)
	controller := NewUpdateTransactionController(f.transactions, f.transactions.ById(), f.references, f.exports)

	response := controller.Handle(controllertest.NewRequest(http.MethodPut, "/api/v2/transaction",
		f.body(map[string]any{"id": tx.Id.Hex(), "internalRefId": tx.Id.Hex()}), nil))
	controllertest.RequireError(t, response, http.StatusUnprocessableEntity, helpers.KeyValidation)
}

func TestDeleteBookedTransaction(t *testing.T) {
	f := newFixture()
	tx := f.generated()
	controller := NewDeleteTransactionController(f.transactions, f.transactions.ById(), usecasetest.Dependents{tx.Id: true}, f.exports)

	response := controller.Handle(controllertest.NewRequest(http.MethodDelete, "/api/v2/transaction/"+tx.Id.Hex(), nil,
		map[string]string{"id": tx.Id.Hex()}))
	controllertest.RequireError(t, response, http.StatusConflict, helpers.KeyDeleteDependents)
}

type memoryCache struct {
	data  map[string][]byte
	saves int
}

func (m *memoryCache) Find(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memoryCache) Save(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.data[key] = data
	m.saves++
	return nil
}

func (m *memoryCache) Invalidate(_ context.Context, workspaceId primitive.ObjectID) error {
	for key := range m.data {
		if strings.HasPrefix(key, workspaceId.Hex()+":") {
			delete(m.data, key)
		}
	}
	return nil
}

func cacheKey(workspaceId string, format string) string {
	return workspaceId + ":" + format
}

func TestExportCsvIsCached(t *testing.T) {
	f := newFixture()
	f.generated()
	cache := &memoryCache{data: map[string][]byte{}}
	controller := NewExportTransactionsController(f.transactions, cache, cacheKey, time.Minute)

	request := func() []byte {
		response := controller.Handle(controllertest.NewRequest(http.MethodGet,
			"/api/v2/transaction/workspace/"+f.workspace.Id.Hex()+"/export?format=csv", nil,
			map[string]string{"workspace_id": f.workspace.Id.Hex()}))
		require.Equal(t, http.StatusOK, response.StatusCode)
		assert.Contains(t, response.Header.Get("Content-Type"), "text/csv")
		data, err := io.ReadAll(response.Body)
		require.NoError(t, err)
		return data
	}

	first := request()
	second := request()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.saves)

	records, err := csv.NewReader(bytes.NewReader(first)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{"2026-02-01", "Rent", "-500.00", "0.00", "OPEN", "PAYMENT", "", "", "", ""}, records[1])
}

func TestExportFollowsWrites(t *testing.T) {
	f := newFixture()
	tx := f.generated()
	export := NewExportTransactionsController(f.transactions, f.exports, cacheKey, time.Minute)

	rows := func() [][]string {
		response := export.Handle(controllertest.NewRequest(http.MethodGet,
			"/api/v2/transaction/workspace/"+f.workspace.Id.Hex()+"/export?format=csv", nil,
			map[string]string{"workspace_id": f.workspace.Id.Hex()}))
		require.Equal(t, http.StatusOK, response.StatusCode)
		records, err := csv.NewReader(response.Body).ReadAll()
		require.NoError(t, err)
		return records
	}

	require.Len(t, rows(), 2)

	create := NewCreateTransactionController(f.transactions, f.workspaces.ById(), f.references, f.exports)
	response := create.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/transaction",
		f.body(map[string]any{"workspaceId": f.workspace.Id.Hex(), "name": "Groceries"}), nil))
	require.Equal(t, http.StatusCreated, response.StatusCode)
	assert.Len(t, rows(), 3)

	update := NewUpdateTransactionController(f.transactions, f.transactions.ById(), f.references, f.exports)
	response = update.Handle(controllertest.NewRequest(http.MethodPut, "/api/v2/transaction",
		f.body(map[string]any{"id": tx.Id.Hex(), "amount": "-550"}), nil))
	require.Equal(t, http.StatusOK, response.StatusCode)
	updated := rows()
	require.Len(t, updated, 3)
	assert.Contains(t, updated[1:], []string{"2026-02-01", "Rent", "-550.00", "0.00", "OPEN", "PAYMENT", "", "", "", ""})

	remove := NewDeleteTransactionController(f.transactions, f.transactions.ById(), usecasetest.Dependents{}, f.exports)
	response = remove.Handle(controllertest.NewRequest(http.MethodDelete, "/api/v2/transaction/"+tx.Id.Hex(), nil,
		map[string]string{"id": tx.Id.Hex()}))
	require.Equal(t, http.StatusNoContent, response.StatusCode)
	assert.Len(t, rows(), 2)
	assert.Equal(t, 4, f.exports.saves)
}

func TestExportXlsx(t *testing.T) {
	f := newFixture()
	f.generated()
	controller := NewExportTransactionsController(f.transactions, &memoryCache{data: map[string][]byte{}}, cacheKey, time.Minute)

	response := controller.Handle(controllertest.NewRequest(http.MethodGet,
		"/api/v2/transaction/workspace/"+f.workspace.Id.Hex()+"/export", nil,
		map[string]string{"workspace_id": f.workspace.Id.Hex()}))
	require.Equal(t, http.StatusOK, response.StatusCode)

	file, err := excelize.OpenReader(response.Body)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Rent", rows[1][1])

	amount, err := file.GetCellValue("Transactions", "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "-500", amount)
}

func TestExportUnknownFormat(t *testing.T) {
	f := newFixture()
	controller := NewExportTransactionsController(f.transactions, &memoryCache{data: map[string][]byte{}}, cacheKey, time.Minute)

	response := controller.Handle(controllertest.NewRequest(http.MethodGet,
		"/api/v2/transaction/workspace/"+f.workspace.Id.Hex()+"/export?format=pdf", nil,
		map[string]string{"workspace_id": f.workspace.Id.Hex()}))
	controllertest.RequireError(t, response, http.StatusBadRequest, helpers.KeyExportFormat)
}
