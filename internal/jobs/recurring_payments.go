// Package jobs holds the background tasks run by the scheduler.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/recurring"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/utils"
)

const UpdateRecurringPaymentsJob = "update_recurring_payments"

type WorkspaceResult struct {
	WorkspaceId string
	// Skipped is set when another instance holds the workspace lock.
	Skipped   bool
	Expired   int
	Generated int
	Failed    int
}

// RecurringPaymentsTask expires the active recurring payments past their end
// date and stores the payments that became due for the others.
type RecurringPaymentsTask struct {
	FindAllWorkspacesRepository           usecase.FindAllWorkspacesRepository
	FindActiveRecurringPaymentsRepository usecase.FindActiveRecurringPaymentsRepository
	Payments                              *recurring.Service
	Locks                                 usecase.LockRepository
	LockKey                               func(job string, workspaceId string) string
	LockTTL                               time.Duration
	Now                                   func() time.Time
}

func NewRecurringPaymentsTask(
	findAllWorkspaces usecase.FindAllWorkspacesRepository,
	findActive usecase.FindActiveRecurringPaymentsRepository,
	payments *recurring.Service,
	locks usecase.LockRepository,
	lockKey func(job string, workspaceId string) string,
	now func() time.Time,
) *RecurringPaymentsTask {
	return &RecurringPaymentsTask{
		FindAllWorkspacesRepository:           findAllWorkspaces,
		FindActiveRecurringPaymentsRepository: findActive,
		Payments:                              payments,
		Locks:                                 locks,
		LockKey:                               lockKey,
		LockTTL:                               time.Hour,
		Now:                                   now,
	}
}

// Run processes all workspaces concurrently. A failing workspace does not
// stop the others; their errors are joined.
func (t *RecurringPaymentsTask) Run(ctx context.Context) error {
	workspaces, err := t.FindAllWorkspacesRepository.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("find workspaces: %w", err)
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	for _, workspace := range workspaces {
		wg.Add(1)
		go func(workspaceId primitive.ObjectID) {
			defer utils.RecoveryWithCallback(&wg, func(r any) {
				fail(fmt.Errorf("workspace %s: panic: %v", workspaceId.Hex(), r))
			})

			if _, err := t.RunWorkspace(ctx, workspaceId); err != nil {
				fail(fmt.Errorf("workspace %s: %w", workspaceId.Hex(), err))
			}
			wg.Done()
		}(workspace.Id)
	}

	wg.Wait()
	return errors.Join(errs...)
}

func (t *RecurringPaymentsTask) RunWorkspace(ctx context.Context, workspaceId primitive.ObjectID) (*WorkspaceResult, error) {
	result := &WorkspaceResult{WorkspaceId: workspaceId.Hex()}
	entry := log.WithFields(log.Fields{"job": UpdateRecurringPaymentsJob, "workspace": result.WorkspaceId})

	key := t.LockKey(UpdateRecurringPaymentsJob, result.WorkspaceId)
	acquired, err := t.Locks.Acquire(ctx, key, t.LockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		entry.Info("Workspace locked by another run, skipping")
		result.Skipped = true
		return result, nil
	}
	defer func() {
		if err := t.Locks.Release(context.WithoutCancel(ctx), key); err != nil {
			entry.WithError(err).Warn("Error releasing job lock")
		}
	}()

	payments, err := t.FindActiveRecurringPaymentsRepository.FindActive(ctx, workspaceId)
	if err != nil {
		return nil, fmt.Errorf("find active recurring payments: %w", err)
	}

	now := t.Now()
	var errs []error
	for i := range payments {
		payment := &payments[i]

		created, err := t.Payments.Advance(ctx, payment, now)
		if err != nil {
			entry.WithError(err).WithField("recurring_payment", payment.Id.Hex()).Error("Error updating recurring payment")
			errs = append(errs, err)
			result.Failed++
			continue
		}

		if payment.Status == models.RecurringPaymentStatusExpired {
			result.Expired++
			continue
		}
		result.Generated += created
	}

	entry.WithFields(log.Fields{
		"payments":  len(payments),
		"expired":   result.Expired,
		"generated": result.Generated,
		"failed":    result.Failed,
	}).Info("Recurring payments updated")

	return result, errors.Join(errs...)
}
