// Package recurring persists the transactions produced by recurring payments.
package recurring

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
)

type Service struct {
	CreateTransactionsRepository          usecase.CreateTransactionsRepository
	FindPendingTransactionsRepository     usecase.FindPendingTransactionsRepository
	DeleteTransactionsRepository          usecase.DeleteTransactionsRepository
	UpdateRecurringPaymentStateRepository usecase.UpdateRecurringPaymentStateRepository
	// InvalidateExportsRepository, when set, drops the cached exports of a
	// workspace whose payments changed.
	InvalidateExportsRepository usecase.InvalidateExportsRepository
	// Horizon is how far ahead of now payments are generated.
	Horizon time.Duration
}

func NewService(
	createTransactions usecase.CreateTransactionsRepository,
	findPending usecase.FindPendingTransactionsRepository,
	deleteTransactions usecase.DeleteTransactionsRepository,
	updateState usecase.UpdateRecurringPaymentStateRepository,
) *Service {
	return &Service{
		CreateTransactionsRepository:          createTransactions,
		FindPendingTransactionsRepository:     findPending,
		DeleteTransactionsRepository:          deleteTransactions,
		UpdateRecurringPaymentStateRepository: updateState,
		Horizon:                               models.DefaultPaymentHorizon,
	}
}

// GeneratePayments stores the payments due since the last run and moves the
// last transaction date forward.
func (s *Service) GeneratePayments(ctx context.Context, payment *models.RecurringPayment, now time.Time) ([]models.Transaction, error) {
	payments, err := payment.GeneratePayments(now, s.Horizon, true)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return []models.Transaction{}, nil
	}

	created, err := s.CreateTransactionsRepository.CreateMany(ctx, payments)
	if err != nil {
		return nil, fmt.Errorf("store payments of %s: %w", payment.Id.Hex(), err)
	}

	if err := s.UpdateRecurringPaymentStateRepository.UpdateState(ctx, payment.Id, payment.Status, payment.LastTransactionDate); err != nil {
		return nil, err
	}
	s.invalidateExports(ctx, payment.WorkspaceId)

	return created, nil
}

// UpdatePayments replaces the pending payments. Without force, payments the
// user changed are kept.
func (s *Service) UpdatePayments(ctx context.Context, payment *models.RecurringPayment, now time.Time, force bool) (*models.PaymentUpdate, error) {
	pending, err := s.FindPendingTransactionsRepository.FindPending(ctx, payment.Id, now)
	if err != nil {
		return nil, err
	}

	update, err := payment.UpdatePayments(now, s.Horizon, pending, force)
	if err != nil {
		return nil, err
	}

	if len(update.Delete) > 0 {
		ids := make([]primitive.ObjectID, len(update.Delete))
		for i, tx := range update.Delete {
			ids[i] = tx.Id
		}
		if err := s.DeleteTransactionsRepository.DeleteMany(ctx, ids); err != nil {
			return nil, fmt.Errorf("delete pending payments of %s: %w", payment.Id.Hex(), err)
		}
	}

	if len(update.Create) > 0 {
		created, err := s.CreateTransactionsRepository.CreateMany(ctx, update.Create)
		if err != nil {
			return nil, fmt.Errorf("store payments of %s: %w", payment.Id.Hex(), err)
		}
		update.Create = created
	}

	if err := s.UpdateRecurringPaymentStateRepository.UpdateState(ctx, payment.Id, payment.Status, payment.LastTransactionDate); err != nil {
		return nil, err
	}
	if len(update.Delete) > 0 || len(update.Create) > 0 {
		s.invalidateExports(ctx, payment.WorkspaceId)
	}

	return update, nil
}

func (s *Service) invalidateExports(ctx context.Context, workspaceId primitive.ObjectID) {
	if s.InvalidateExportsRepository == nil {
		return
	}
	if err := s.InvalidateExportsRepository.Invalidate(ctx, workspaceId); err != nil {
		log.WithError(err).WithField("workspace", workspaceId.Hex()).Warn("Error invalidating cached exports")
	}
}

// Advance is the scheduled step for one active payment: it expires payments
// past their end date and generates the due payments of the others.
func (s *Service) Advance(ctx context.Context, payment *models.RecurringPayment, now time.Time) (int, error) {
	if payment.NotAfter != nil && payment.NotAfter.Before(now) {
		payment.Status = models.RecurringPaymentStatusExpired
		return 0, s.UpdateRecurringPaymentStateRepository.UpdateState(ctx, payment.Id, payment.Status, payment.LastTransactionDate)
	}

	created, err := s.GeneratePayments(ctx, payment, now)
	if err != nil {
		return 0, err
	}
	return len(created), nil
}
