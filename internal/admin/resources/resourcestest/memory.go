// Package resourcestest provides an in-memory API for testing code built
// on the administered resources.
package resourcestest

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/client"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

// MemoryAPI keeps every resource in memory and refuses deletes of
// referenced assets like the server does. A non nil Err fails every call.
type MemoryAPI struct {
	Calls           int
	Err             error
	WorkspaceRows   []models.Workspace
	AssetRows       []models.Asset
	PartnerRows     []models.Partner
	WalletRows      []models.Wallet
	TransactionRows []models.Transaction
	BookedRows      []models.BookedAmount
	PaymentRows     []models.RecurringPayment
	UserRows        []models.User
	Update          *models.PaymentUpdate
	Forced          []bool
}

func paged[T any](q client.Query, rows []T) *models.PagedResponse[T] {
	size := q.Size
	if size == 0 {
		size = models.DefaultPageSize
	}
	start := min(q.Page*size, len(rows))
	end := min(start+size, len(rows))
	return models.NewPagedResponse(q.Page, size, int64(len(rows)), append([]T{}, rows[start:end]...))
}

func replace[T any](rows []T, match func(T) bool, value T) ([]T, bool) {
	for i := range rows {
		if match(rows[i]) {
			rows[i] = value
			return rows, true
		}
	}
	return rows, false
}

func notFound() error {
	return &client.APIError{Status: http.StatusNotFound, TranslationKey: "error.not_found", Message: "not found"}
}

func (m *MemoryAPI) Workspaces(ctx context.Context, q client.Query) (*models.PagedResponse[models.Workspace], error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return paged(q, m.WorkspaceRows), nil
}

func (m *MemoryAPI) CreateWorkspace(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	workspace.Id = primitive.NewObjectID()
	m.WorkspaceRows = append(m.WorkspaceRows, *workspace)
	return workspace, nil
}

func (m *MemoryAPI) UpdateWorkspace(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	var ok bool
	m.WorkspaceRows, ok = replace(m.WorkspaceRows, func(w models.Workspace) bool { return w.Id == workspace.Id }, *workspace)
	if !ok {
		return nil, notFound()
	}
	return workspace, nil
}

func (m *MemoryAPI) DeleteWorkspace(ctx context.Context, id primitive.ObjectID) error {
	if err := m.call(); err != nil {
		return err
	}
	return nil
}

func (m *MemoryAPI) Assets(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.Asset], error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	var rows []models.Asset
	for _, asset := range m.AssetRows {
		if asset.WorkspaceId == workspaceId {
			rows = append(rows, asset)
		}
	}
	return paged(q, rows), nil
}

func (m *MemoryAPI) CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	asset.Id = primitive.NewObjectID()
	m.AssetRows = append(m.AssetRows, *asset)
	return asset, nil
}

func (m *MemoryAPI) UpdateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	var ok bool
	m.AssetRows, ok = replace(m.AssetRows, func(a models.Asset) bool { return a.Id == asset.Id }, *asset)
	if !ok {
		return nil, notFound()
	}
	return asset, nil
}

func (m *MemoryAPI) DeleteAsset(ctx context.Context, id primitive.ObjectID) error {
	if err := m.call(); err != nil {
		return err
	}
	for _, wallet := range m.WalletRows {
		if wallet.AssetId != nil && *wallet.AssetId == id {
			return &client.APIError{
				Status:         http.StatusConflict,
				Message:        "the asset is still referenced by other entries and cannot be deleted",
				TranslationKey: "error.delete.dependents",
			}
		}
	}
	for i, asset := range m.AssetRows {
		if asset.Id == id {
			m.AssetRows = append(m.AssetRows[:i], m.AssetRows[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (m *MemoryAPI) Partners(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.Partner], error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return paged(q, m.PartnerRows), nil
}

func (m *MemoryAPI) CreatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	partner.Id = primitive.NewObjectID()
	m.PartnerRows = append(m.PartnerRows, *partner)
	return partner, nil
}

func (m *MemoryAPI) UpdatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return partner, nil
}

func (m *MemoryAPI) DeletePartner(ctx context.Context, id primitive.ObjectID) error {
	if err := m.call(); err != nil {
		return err
	}
	return nil
}

func (m *MemoryAPI) Wallets(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.Wallet], error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return paged(q, m.WalletRows), nil
}

func (m *MemoryAPI) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	wallet.Id = primitive.NewObjectID()
	m.WalletRows = append(m.WalletRows, *wallet)
	return wallet, nil
}

func (m *MemoryAPI) UpdateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (m *MemoryAPI) DeleteWallet(ctx context.Context, id primitive.ObjectID) error {
	if err := m.call(); err != nil {
		return err
	}
	return nil
}

func (m *MemoryAPI) Transactions(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.Transaction], error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	var rows []models.Transaction
	for _, tx := range m.TransactionRows {
		if tx.WorkspaceId != workspaceId {
			continue
		}
		for i := range m.AssetRows {
			if m.AssetRows[i].Id == tx.AssetId {
				tx.Asset = &m.AssetRows[i]
			}
		}
		rows = append(rows, tx)
	}
	return paged(q, rows), nil
}

func (m *MemoryAPI) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	tx.Id = primitive.NewObjectID()
	m.TransactionRows = append(m.TransactionRows, *tx)
	return tx, nil
}

func (m *MemoryAPI) UpdateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	var ok bool
	m.TransactionRows, ok = replace(m.TransactionRows, func(t models.Transaction) bool { return t.Id == tx.Id }, *tx)
	if !ok {
		return nil, notFound()
	}
	return tx, nil
}

func (m *MemoryAPI) DeleteTransaction(ctx context.Context, id primitive.ObjectID) error {
	if err := m.call(); err != nil {
		return err
	}
	return nil
}

func (m *MemoryAPI) BookedAmounts(ctx context.Context, transactionId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.BookedAmount], error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	var rows []models.BookedAmount
	for _, booked := range m.BookedRows {
		if booked.TransactionId == transactionId {
			rows = append(rows, booked)
		}
	}
	return paged(q, rows), nil
}

func (m *MemoryAPI) CreateBookedAmount(ctx context.Context, booked *models.BookedAmount) (*models.BookedAmount, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	booked.Id = primitive.NewObjectID()
	m.BookedRows = append(m.BookedRows, *booked)
	return booked, nil
}

func (m *MemoryAPI) UpdateBookedAmount(ctx context.Context, booked *models.BookedAmount) (*models.BookedAmount, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return booked, nil
}

func (m *MemoryAPI) DeleteBookedAmount(ctx context.Context, id primitive.ObjectID) error {
	if err := m.call(); err != nil {
		return err
	}
	return nil
}

func (m *MemoryAPI) RecurringPayments(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.RecurringPayment], error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return paged(q, m.PaymentRows), nil
}

func (m *MemoryAPI) CreateRecurringPayment(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	payment.Id = primitive.NewObjectID()
	m.PaymentRows = append(m.PaymentRows, *payment)
	return payment, nil
}

func (m *MemoryAPI) UpdateRecurringPayment(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return payment, nil
}

func (m *MemoryAPI) DeleteRecurringPayment(ctx context.Context, id primitive.ObjectID) error {
	if err := m.call(); err != nil {
		return err
	}
	return nil
}

func (m *MemoryAPI) UpdatePayments(ctx context.Context, id primitive.ObjectID, overwriteModified bool) (*models.PaymentUpdate, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	m.Forced = append(m.Forced, overwriteModified)
	return m.Update, nil
}

func (m *MemoryAPI) Users(ctx context.Context, q client.Query) (*models.PagedResponse[models.User], error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return paged(q, m.UserRows), nil
}

func (m *MemoryAPI) CreateUser(ctx context.Context, user *client.UserInput) (*models.User, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	created := models.User{Id: primitive.NewObjectID(), Name: user.Name, Roles: user.Roles}
	m.UserRows = append(m.UserRows, created)
	return &created, nil
}

func (m *MemoryAPI) UpdateUser(ctx context.Context, user *client.UserInput) (*models.User, error) {
	if err := m.call(); err != nil {
		return nil, err
	}
	return &models.User{Id: *user.Id, Name: user.Name, Roles: user.Roles}, nil
}

func (m *MemoryAPI) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := m.call(); err != nil {
		return err
	}
	return nil
}

func (m *MemoryAPI) call() error {
	m.Calls++
	return m.Err
}
