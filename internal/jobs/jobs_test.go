package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/recurring"
	"github.com/familyledger/finance-backend/internal/domain/usecase/usecasetest"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/redis_repository"
)

var now = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	workspaces   *usecasetest.Workspaces
	payments     *usecasetest.RecurringPayments
	transactions *usecasetest.Transactions
	locks        *redis_repository.LockRepository
	task         *RecurringPaymentsTask
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := helpers.RedisHelper("redis://" + mr.Addr())
	require.NoError(t, err)

	f := &fixture{
		workspaces:   usecasetest.NewWorkspaces(),
		payments:     usecasetest.NewRecurringPayments(),
		transactions: usecasetest.NewTransactions(),
		locks:        redis_repository.NewLockRepository(client),
	}
	service := recurring.NewService(f.transactions, f.transactions, f.transactions, f.payments)
	f.task = NewRecurringPaymentsTask(f.workspaces, f.payments, service, f.locks, redis_repository.JobLockKey,
		func() time.Time { return now })
	return f
}

func (f *fixture) payment(workspaceId primitive.ObjectID, notAfter *time.Time) models.RecurringPayment {
	return f.payments.Put(models.RecurringPayment{
		WorkspaceId:  workspaceId,
		Name:         "Rent",
		Amount:       decimal.NewFromInt(-900),
		CronSchedule: "0 0 0 1 * *",
		Status:       models.RecurringPaymentStatusActive,
		NotAfter:     notAfter,
	})
}

func TestRunWorkspaceGeneratesOnce(t *testing.T) {
	f := newFixture(t)
	workspace := f.workspaces.Put(models.Workspace{Name: "Private"})
	f.payment(workspace.Id, nil)

	result, err := f.task.RunWorkspace(context.Background(), workspace.Id)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Generated)
	assert.False(t, result.Skipped)

	result, err = f.task.RunWorkspace(context.Background(), workspace.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Generated)
	assert.Len(t, f.transactions.All(), 12)
}

func TestRunWorkspaceExpiresPayments(t *testing.T) {
	f := newFixture(t)
	workspace := f.workspaces.Put(models.Workspace{Name: "Private"})
	ended := now.AddDate(0, -1, 0)
	payment := f.payment(workspace.Id, &ended)

	result, err := f.task.RunWorkspace(context.Background(), workspace.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Expired)
	assert.Empty(t, f.transactions.All())
	assert.Equal(t, models.RecurringPaymentStatusExpired, f.payments.Get(payment.Id).Status)
}

func TestRunWorkspaceSkipsLockedWorkspace(t *testing.T) {
	f := newFixture(t)
	workspace := f.workspaces.Put(models.Workspace{Name: "Private"})
	f.payment(workspace.Id, nil)

	key := redis_repository.JobLockKey(UpdateRecurringPaymentsJob, workspace.Id.Hex())
	ok, err := f.locks.Acquire(context.Background(), key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	result, err := f.task.RunWorkspace(context.Background(), workspace.Id)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, f.transactions.All())
}

func TestRunReleasesLock(t *testing.T) {
	f := newFixture(t)
	workspace := f.workspaces.Put(models.Workspace{Name: "Private"})

	_, err := f.task.RunWorkspace(context.Background(), workspace.Id)
	require.NoError(t, err)

	ok, err := f.locks.Acquire(context.Background(), redis_repository.JobLockKey(UpdateRecurringPaymentsJob, workspace.Id.Hex()), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRunAllWorkspaces(t *testing.T) {
	f := newFixture(t)
	first := f.workspaces.Put(models.Workspace{Name: "Private"})
	second := f.workspaces.Put(models.Workspace{Name: "Shared"})
	f.payment(first.Id, nil)
	f.payment(second.Id, nil)

	require.NoError(t, f.task.Run(context.Background()))

	counts := map[primitive.ObjectID]int{}
	for _, tx := range f.transactions.All() {
		counts[tx.WorkspaceId]++
	}
	assert.Equal(t, 12, counts[first.Id])
	assert.Equal(t, 12, counts[second.Id])
}

func TestSchedulerRegister(t *testing.T) {
	scheduler := NewScheduler(time.UTC)

	_, err := scheduler.Register("broken", "every day", func(context.Context) error { return nil })
	assert.Error(t, err)

	_, err = scheduler.Register(UpdateRecurringPaymentsJob, "0 0 1 * * *", func(context.Context) error { return nil })
	require.NoError(t, err)
	require.Len(t, scheduler.Entries(), 1)

	scheduler.Start()
	scheduler.Stop()
}
