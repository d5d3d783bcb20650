//go:build integration

package workspace_repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers/mongotest"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/partner_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/recurring_payment_repository"
)

func TestWorkspaceDependents(t *testing.T) {
	db := mongotest.Database(t)
	ctx := context.Background()

	create := NewCreateWorkspaceRepository(db)
	dependents := NewWorkspaceDependentsRepository(db)

	empty, err := create.Create(ctx, &models.Workspace{Name: "Empty"})
	require.NoError(t, err)
	withPartner, err := create.Create(ctx, &models.Workspace{Name: "Partner"})
	require.NoError(t, err)
	withPayment, err := create.Create(ctx, &models.Workspace{Name: "Recurring"})
	require.NoError(t, err)

	_, err = partner_repository.NewCreatePartnerRepository(db).Create(ctx, &models.Partner{WorkspaceId: withPartner.Id, Name: "Landlord"})
	require.NoError(t, err)
	_, err = recurring_payment_repository.NewCreateRecurringPaymentRepository(db).Create(ctx, &models.RecurringPayment{
		WorkspaceId:  withPayment.Id,
		Name:         "Rent",
		Amount:       decimal.NewFromInt(-900),
		CronSchedule: "0 0 0 1 * *",
		Status:       models.RecurringPaymentStatusActive,
		AssetId:      primitive.NewObjectID(),
		WalletId:     primitive.NewObjectID(),
	})
	require.NoError(t, err)

	for _, tc := range []struct {
		workspace primitive.ObjectID
		expected  bool
	}{
		{empty.Id, false},
		{withPartner.Id, true},
		{withPayment.Id, true},
		{primitive.NewObjectID(), false},
	} {
		referenced, err := dependents.HasDependents(ctx, tc.workspace)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, referenced, tc.workspace.Hex())
	}

	require.NoError(t, NewDeleteWorkspaceRepository(db).Delete(ctx, empty.Id))
	found, err := NewFindWorkspaceByIdRepository(db).Find(ctx, empty.Id)
	require.NoError(t, err)
	assert.Nil(t, found)
}
