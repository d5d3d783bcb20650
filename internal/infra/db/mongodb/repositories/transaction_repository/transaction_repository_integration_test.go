//go:build integration

package transaction_repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers/mongotest"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/asset_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/booked_amount_repository"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactionRepositories(t *testing.T) {
	db := mongotest.Database(t)
	ctx := context.Background()
	workspace := primitive.NewObjectID()
	source := primitive.NewObjectID()

	asset, err := asset_repository.NewCreateAssetRepository(db).Create(ctx, &models.Asset{WorkspaceId: workspace, Name: "Euro", Code: "EUR"})
	require.NoError(t, err)
	wallet := primitive.NewObjectID()

	payment := func(date time.Time) models.Transaction {
		return models.Transaction{
			WorkspaceId: workspace,
			Name:        "Rent",
			Amount:      decimal.NewFromInt(-500),
			Date:        date,
			Status:      models.TransactionStatusOpen,
			Type:        models.TransactionTypePayment,
			AssetId:     asset.Id,
			WalletId:    wallet,
			SourceId:    &source,
		}
	}

	created, err := NewCreateTransactionRepository(db).CreateMany(ctx, []models.Transaction{
		payment(day(time.January, 1)),
		payment(day(time.February, 1)),
		payment(day(time.March, 1)),
		payment(day(time.April, 1)),
	})
	require.NoError(t, err)
	require.Len(t, created, 4)

	_, err = booked_amount_repository.NewCreateBookedAmountRepository(db).Create(ctx, &models.BookedAmount{
		TransactionId: created[1].Id,
		Amount:        decimal.NewFromInt(-200),
		Date:          day(time.February, 2),
		AssetId:       asset.Id,
		WalletId:      wallet,
	})
	require.NoError(t, err)

	t.Run("list expands references and booked sum", func(t *testing.T) {
		page, err := NewFindTransactionsByWorkspaceIdRepository(db).Find(ctx, workspace, &models.Pagination{
			Size: 10,
			Sort: []models.SortOrder{{Field: "date", Direction: models.SortAscending}},
		})
		require.NoError(t, err)
		require.Len(t, page.Data, 4)

		feb := page.Data[1]
		assert.True(t, feb.Date.Equal(day(time.February, 1)))
		assert.True(t, decimal.NewFromInt(-200).Equal(feb.Booked), feb.Booked.String())
		assert.True(t, decimal.NewFromInt(-500).Equal(feb.Amount))
		require.NotNil(t, feb.Asset)
		assert.Equal(t, "EUR", feb.Asset.Code)
		assert.Nil(t, feb.Wallet)
		assert.True(t, page.Data[0].Booked.IsZero())
	})

	t.Run("pending skips booked and past payments", func(t *testing.T) {
		pending, err := NewFindPendingTransactionsRepository(db).FindPending(ctx, source, day(time.January, 15))
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.True(t, pending[0].Date.Equal(day(time.March, 1)))
		assert.True(t, pending[1].Date.Equal(day(time.April, 1)))
	})

	t.Run("dependents", func(t *testing.T) {
		dependents := NewTransactionDependentsRepository(db)

		referenced, err := dependents.HasDependents(ctx, created[1].Id)
		require.NoError(t, err)
		assert.True(t, referenced)

		referenced, err = dependents.HasDependents(ctx, created[2].Id)
		require.NoError(t, err)
		assert.False(t, referenced)
	})

	t.Run("release", func(t *testing.T) {
		require.NoError(t, NewReleaseGeneratedTransactionsRepository(db).Release(ctx, source))

		all, err := NewFindAllTransactionsRepository(db).FindAll(ctx, workspace)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, created[1].Id, all[0].Id)
		assert.Nil(t, all[0].SourceId)
	})
}
