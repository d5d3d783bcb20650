package usecasetest

import (
	"context"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func NewWorkspaces() *Workspaces {
	return &Workspaces{Collection: NewCollection(
		func(w *models.Workspace) primitive.ObjectID { return w.Id },
		func(w *models.Workspace, id primitive.ObjectID) { w.Id = id; stamp(&w.CreatedAt, &w.UpdatedAt) },
		nil,
	)}
}

func NewAssets() *Collection[models.Asset] {
	return NewCollection(
		func(a *models.Asset) primitive.ObjectID { return a.Id },
		func(a *models.Asset, id primitive.ObjectID) { a.Id = id; stamp(&a.CreatedAt, &a.UpdatedAt) },
		func(a *models.Asset) primitive.ObjectID { return a.WorkspaceId },
	)
}

func NewPartners() *Collection[models.Partner] {
	return NewCollection(
		func(p *models.Partner) primitive.ObjectID { return p.Id },
		func(p *models.Partner, id primitive.ObjectID) { p.Id = id; stamp(&p.CreatedAt, &p.UpdatedAt) },
		func(p *models.Partner) primitive.ObjectID { return p.WorkspaceId },
	)
}

func NewWallets() *Collection[models.Wallet] {
	return NewCollection(
		func(w *models.Wallet) primitive.ObjectID { return w.Id },
		func(w *models.Wallet, id primitive.ObjectID) { w.Id = id; stamp(&w.CreatedAt, &w.UpdatedAt) },
		func(w *models.Wallet) primitive.ObjectID { return w.WorkspaceId },
	)
}

func NewTransactions() *Transactions {
	return &Transactions{Collection: NewCollection(
		func(t *models.Transaction) primitive.ObjectID { return t.Id },
		func(t *models.Transaction, id primitive.ObjectID) { t.Id = id; stamp(&t.CreatedAt, &t.UpdatedAt) },
		func(t *models.Transaction) primitive.ObjectID { return t.WorkspaceId },
	)}
}

func NewBookedAmounts() *Collection[models.BookedAmount] {
	return NewCollection(
		func(b *models.BookedAmount) primitive.ObjectID { return b.Id },
		func(b *models.BookedAmount, id primitive.ObjectID) { b.Id = id; stamp(&b.CreatedAt, &b.UpdatedAt) },
		func(b *models.BookedAmount) primitive.ObjectID { return b.TransactionId },
	)
}

func NewRecurringPayments() *RecurringPayments {
	return &RecurringPayments{Collection: NewCollection(
		func(p *models.RecurringPayment) primitive.ObjectID { return p.Id },
		func(p *models.RecurringPayment, id primitive.ObjectID) { p.Id = id; stamp(&p.CreatedAt, &p.UpdatedAt) },
		func(p *models.RecurringPayment) primitive.ObjectID { return p.WorkspaceId },
	)}
}

func NewUsers() *Users {
	return &Users{Collection: NewCollection(
		func(u *models.User) primitive.ObjectID { return u.Id },
		func(u *models.User, id primitive.ObjectID) { u.Id = id; stamp(&u.CreatedAt, &u.UpdatedAt) },
		nil,
	)}
}

// Transactions adds the queries specific to generated transactions.
type Transactions struct {
	*Collection[models.Transaction]
	// Booked marks transactions having booked amounts.
	Booked map[primitive.ObjectID]bool
}

func (t *Transactions) FindAll(_ context.Context, workspaceId primitive.ObjectID) ([]models.Transaction, error) {
	if t.Err != nil {
		return nil, t.Err
	}

	var result []models.Transaction
	for _, tx := range t.All() {
		if tx.WorkspaceId == workspaceId {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (t *Transactions) FindPending(_ context.Context, sourceId primitive.ObjectID, after time.Time) ([]models.Transaction, error) {
	if t.Err != nil {
		return nil, t.Err
	}

	var result []models.Transaction
	for _, tx := range t.All() {
		if tx.SourceId != nil && *tx.SourceId == sourceId && tx.Date.After(after) && !t.Booked[tx.Id] {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (t *Transactions) Release(ctx context.Context, sourceId primitive.ObjectID) error {
	for _, tx := range t.All() {
		if tx.SourceId == nil || *tx.SourceId != sourceId {
			continue
		}
		if tx.Status == models.TransactionStatusOpen && !t.Booked[tx.Id] {
			if err := t.Delete(ctx, tx.Id); err != nil {
				return err
			}
			continue
		}
		tx.SourceId = nil
		if _, err := t.Update(ctx, &tx); err != nil {
			return err
		}
	}
	return nil
}

type RecurringPayments struct {
	*Collection[models.RecurringPayment]
}

func (r *RecurringPayments) FindActive(_ context.Context, workspaceId primitive.ObjectID) ([]models.RecurringPayment, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	var result []models.RecurringPayment
	for _, payment := range r.All() {
		if payment.WorkspaceId == workspaceId && payment.Status == models.RecurringPaymentStatusActive {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (r *RecurringPayments) UpdateState(_ context.Context, paymentId primitive.ObjectID, status models.RecurringPaymentStatus, lastTransactionDate *time.Time) error {
	if r.Err != nil {
		return r.Err
	}

	payment := r.Get(paymentId)
	if payment == nil {
		return nil
	}
	payment.Status = status
	payment.LastTransactionDate = lastTransactionDate
	_, err := r.Collection.Update(context.Background(), payment)
	return err
}

type Users struct {
	*Collection[models.User]
}

func (u *Users) Find(_ context.Context, pagination *models.Pagination) (*models.PagedResponse[models.User], error) {
	if u.Err != nil {
		return nil, u.Err
	}
	return page(u.All(), pagination), nil
}

func (u *Users) FindByName(_ context.Context, name string) (*models.User, error) {
	if u.Err != nil {
		return nil, u.Err
	}
	for _, user := range u.All() {
		if user.Name == name {
			return &user, nil
		}
	}
	return nil, nil
}

func (u *Users) Count(_ context.Context, role string) (int64, error) {
	if u.Err != nil {
		return 0, u.Err
	}
	var count int64
	for _, user := range u.All() {
		if role == "" || user.HasRole(role) {
			count++
		}
	}
	return count, nil
}

// Workspaces pages and counts every workspace of the collection.
type Workspaces struct {
	*Collection[models.Workspace]
}

func (w *Workspaces) Find(_ context.Context, pagination *models.Pagination) (*models.PagedResponse[models.Workspace], error) {
	if w.Err != nil {
		return nil, w.Err
	}
	return page(w.All(), pagination), nil
}

func (w *Workspaces) FindAll(_ context.Context) ([]models.Workspace, error) {
	if w.Err != nil {
		return nil, w.Err
	}
	return w.All(), nil
}

func (w *Workspaces) Count(_ context.Context) (int64, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	return int64(len(w.All())), nil
}

// Dependents reports the ids marked as referenced.
type Dependents map[primitive.ObjectID]bool

func (d Dependents) HasDependents(_ context.Context, id primitive.ObjectID) (bool, error) {
	return d[id], nil
}

// References knows which ids exist in which workspace.
type References map[primitive.ObjectID]primitive.ObjectID

func (r References) Add(workspaceId primitive.ObjectID, ids ...primitive.ObjectID) {
	for _, id := range ids {
		r[id] = workspaceId
	}
}

func (r References) Exists(_ context.Context, _ string, id primitive.ObjectID, workspaceId primitive.ObjectID) (bool, error) {
	owner, ok := r[id]
	return ok && owner == workspaceId, nil
}

// Exports records the workspaces whose cached exports were invalidated.
type Exports struct {
	Invalidated []primitive.ObjectID
}

func (e *Exports) Invalidate(_ context.Context, workspaceId primitive.ObjectID) error {
	e.Invalidated = append(e.Invalidated, workspaceId)
	return nil
}
