package booked_amount

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase/usecasetest"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/controllertest"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
)

func TestBookAmount(t *testing.T) {
	transactions := usecasetest.NewTransactions()
	booked := usecasetest.NewBookedAmounts()
	references := usecasetest.References{}
	workspaceId := primitive.NewObjectID()
	asset, wallet := primitive.NewObjectID(), primitive.NewObjectID()
	references.Add(workspaceId, asset, wallet)
	tx := transactions.Put(models.Transaction{WorkspaceId: workspaceId, Name: "Rent", Amount: decimal.NewFromInt(-500)})
	exports := &usecasetest.Exports{}

	controller := NewCreateBookedAmountController(booked, transactions.ById(), references, exports)
	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/transaction/"+tx.Id.Hex()+"/book", map[string]any{
		"amount":   "-250.5",
		"date":     "2026-02-03T18:30:00+02:00",
		"assetId":  asset.Hex(),
		"walletId": wallet.Hex(),
	}, map[string]string{"transaction_id": tx.Id.Hex()}))
	require.Equal(t, http.StatusCreated, response.StatusCode)

	created := controllertest.Decode[models.BookedAmount](t, response)
	assert.Equal(t, tx.Id, created.TransactionId)
	assert.True(t, decimal.RequireFromString("-250.5").Equal(created.Amount))
	assert.True(t, time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC).Equal(created.Date))
	assert.Equal(t, []primitive.ObjectID{workspaceId}, exports.Invalidated)

	list := NewGetBookedAmountsController(booked.ByParent())
	response = list.Handle(controllertest.NewRequest(http.MethodGet, "/api/v2/transaction/"+tx.Id.Hex()+"/book", nil,
		map[string]string{"transaction_id": tx.Id.Hex()}))
	require.Equal(t, http.StatusOK, response.StatusCode)
	page := controllertest.Decode[models.PagedResponse[models.BookedAmount]](t, response)
	assert.Len(t, page.Data, 1)
}

func TestBookAmountInvalidDate(t *testing.T) {
	transactions := usecasetest.NewTransactions()
	tx := transactions.Put(models.Transaction{Name: "Rent"})

	controller := NewCreateBookedAmountController(usecasetest.NewBookedAmounts(), transactions.ById(), usecasetest.References{}, &usecasetest.Exports{})
	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/transaction/"+tx.Id.Hex()+"/book", map[string]any{
		"amount":   "1",
		"date":     "03.02.2026",
		"assetId":  primitive.NewObjectID().Hex(),
		"walletId": primitive.NewObjectID().Hex(),
	}, map[string]string{"transaction_id": tx.Id.Hex()}))
	controllertest.RequireError(t, response, http.StatusUnprocessableEntity, helpers.KeyValidation)
}

func TestBookAmountOnMissingTransaction(t *testing.T) {
	controller := NewCreateBookedAmountController(usecasetest.NewBookedAmounts(), usecasetest.NewTransactions().ById(), usecasetest.References{}, &usecasetest.Exports{})
	id := primitive.NewObjectID().Hex()
	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/transaction/"+id+"/book", map[string]any{
		"amount":   "1",
		"date":     "2026-02-03",
		"assetId":  primitive.NewObjectID().Hex(),
		"walletId": primitive.NewObjectID().Hex(),
	}, map[string]string{"transaction_id": id}))
	controllertest.RequireError(t, response, http.StatusNotFound, helpers.KeyNotFound)
}

func TestUpdateAndDeleteBookedAmount(t *testing.T) {
	transactions := usecasetest.NewTransactions()
	booked := usecasetest.NewBookedAmounts()
	references := usecasetest.References{}
	workspaceId := primitive.NewObjectID()
	asset, wallet := primitive.NewObjectID(), primitive.NewObjectID()
	references.Add(workspaceId, asset, wallet)
	tx := transactions.Put(models.Transaction{WorkspaceId: workspaceId, Name: "Rent"})
	entry := booked.Put(models.BookedAmount{TransactionId: tx.Id, Amount: decimal.NewFromInt(10), AssetId: asset, WalletId: wallet})
	exports := &usecasetest.Exports{}

	update := NewUpdateBookedAmountController(booked, booked.ById(), transactions.ById(), references, exports)
	response := update.Handle(controllertest.NewRequest(http.MethodPatch, "/api/v2/bookedamount", map[string]any{
		"id":       entry.Id.Hex(),
		"amount":   "12.34",
		"date":     "2026-03-01",
		"assetId":  asset.Hex(),
		"walletId": wallet.Hex(),
		"notes":    "late",
	}, nil))
	require.Equal(t, http.StatusOK, response.StatusCode)

	stored := booked.Get(entry.Id)
	assert.Equal(t, "12.34", stored.Amount.String())
	assert.Equal(t, "late", stored.Notes)
	assert.Equal(t, tx.Id, stored.TransactionId)
	assert.Equal(t, []primitive.ObjectID{workspaceId}, exports.Invalidated)

	remove := NewDeleteBookedAmountController(booked, booked.ById(), transactions.ById(), exports)
	response = remove.Handle(controllertest.NewRequest(http.MethodDelete, "/api/v2/bookedamount/"+entry.Id.Hex(), nil,
		map[string]string{"id": entry.Id.Hex()}))
	assert.Equal(t, http.StatusNoContent, response.StatusCode)
	assert.Nil(t, booked.Get(entry.Id))
	assert.Equal(t, []primitive.ObjectID{workspaceId, workspaceId}, exports.Invalidated)
}
