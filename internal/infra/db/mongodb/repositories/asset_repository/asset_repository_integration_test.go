//go:build integration

package asset_repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers/mongotest"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/partner_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/wallet_repository"
)

func TestAssetRepositories(t *testing.T) {
	db := mongotest.Database(t)
	ctx := context.Background()
	workspace := primitive.NewObjectID()

	provider, err := partner_repository.NewCreatePartnerRepository(db).Create(ctx, &models.Partner{WorkspaceId: workspace, Name: "ECB"})
	require.NoError(t, err)

	create := NewCreateAssetRepository(db)
	for _, asset := range []models.Asset{
		{WorkspaceId: workspace, Name: "Euro", Code: "EUR", ProviderId: &provider.Id},
		{WorkspaceId: workspace, Name: "Dollar", Code: "USD"},
		{WorkspaceId: workspace, Name: "Yen", Code: "JPY"},
		{WorkspaceId: primitive.NewObjectID(), Name: "Franc", Code: "CHF"},
	} {
		_, err := create.Create(ctx, &asset)
		require.NoError(t, err)
	}

	t.Run("paged and sorted per workspace", func(t *testing.T) {
		page, err := NewFindAssetsByWorkspaceIdRepository(db).Find(ctx, workspace, &models.Pagination{
			Page: 0,
			Size: 2,
			Sort: []models.SortOrder{{Field: "name", Direction: models.SortDescending}},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(3), page.TotalElements)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Data, 2)
		assert.Equal(t, "Yen", page.Data[0].Name)
		assert.Equal(t, "Euro", page.Data[1].Name)
		require.NotNil(t, page.Data[1].Provider)
		assert.Equal(t, "ECB", page.Data[1].Provider.Name)
	})

	t.Run("unknown sort field", func(t *testing.T) {
		_, err := NewFindAssetsByWorkspaceIdRepository(db).Find(ctx, workspace, &models.Pagination{
			Size: 10,
			Sort: []models.SortOrder{{Field: "password"}},
		})
		assert.ErrorIs(t, err, helpers.ErrInvalidSortField)
	})

	t.Run("missing asset", func(t *testing.T) {
		found, err := NewFindAssetByIdRepository(db).Find(ctx, primitive.NewObjectID())
		assert.NoError(t, err)
		assert.Nil(t, found)

		updated, err := NewUpdateAssetRepository(db).Update(ctx, &models.Asset{Id: primitive.NewObjectID(), Name: "Ghost", Code: "GHO"})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("dependents", func(t *testing.T) {
		asset, err := create.Create(ctx, &models.Asset{WorkspaceId: workspace, Name: "Pound", Code: "GBP"})
		require.NoError(t, err)

		dependents := NewAssetDependentsRepository(db)
		referenced, err := dependents.HasDependents(ctx, asset.Id)
		require.NoError(t, err)
		assert.False(t, referenced)

		wallet, err := wallet_repository.NewCreateWalletRepository(db).Create(ctx, &models.Wallet{WorkspaceId: workspace, Name: "Cash", AssetId: &asset.Id})
		require.NoError(t, err)

		referenced, err = dependents.HasDependents(ctx, asset.Id)
		require.NoError(t, err)
		assert.True(t, referenced)

		require.NoError(t, wallet_repository.NewDeleteWalletRepository(db).Delete(ctx, wallet.Id))
		require.NoError(t, NewDeleteAssetRepository(db).Delete(ctx, asset.Id))

		found, err := NewFindAssetByIdRepository(db).Find(ctx, asset.Id)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
