// Package resources implements the entity functions, columns and forms of
// every administered resource on top of the REST client.
package resources

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/client"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type WorkspaceAPI interface {
	Workspaces(ctx context.Context, q client.Query) (*models.PagedResponse[models.Workspace], error)
	CreateWorkspace(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error)
	UpdateWorkspace(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error)
	DeleteWorkspace(ctx context.Context, id primitive.ObjectID) error
}

type AssetAPI interface {
	Assets(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.Asset], error)
	CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error)
	UpdateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id primitive.ObjectID) error
}

type PartnerAPI interface {
	Partners(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.Partner], error)
	CreatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error)
	UpdatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error)
	DeletePartner(ctx context.Context, id primitive.ObjectID) error
}

type WalletAPI interface {
	Wallets(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.Wallet], error)
	CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)
	UpdateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)
	DeleteWallet(ctx context.Context, id primitive.ObjectID) error
}

type TransactionAPI interface {
	Transactions(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.Transaction], error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id primitive.ObjectID) error
}

type BookedAmountAPI interface {
	BookedAmounts(ctx context.Context, transactionId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.BookedAmount], error)
	CreateBookedAmount(ctx context.Context, booked *models.BookedAmount) (*models.BookedAmount, error)
	UpdateBookedAmount(ctx context.Context, booked *models.BookedAmount) (*models.BookedAmount, error)
	DeleteBookedAmount(ctx context.Context, id primitive.ObjectID) error
}

type RecurringPaymentAPI interface {
	RecurringPayments(ctx context.Context, workspaceId primitive.ObjectID, q client.Query) (*models.PagedResponse[models.RecurringPayment], error)
	CreateRecurringPayment(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error)
	UpdateRecurringPayment(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error)
	DeleteRecurringPayment(ctx context.Context, id primitive.ObjectID) error
	UpdatePayments(ctx context.Context, id primitive.ObjectID, overwriteModified bool) (*models.PaymentUpdate, error)
}

type UserAPI interface {
	Users(ctx context.Context, q client.Query) (*models.PagedResponse[models.User], error)
	CreateUser(ctx context.Context, user *client.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, user *client.UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// API is every call the administration makes.
type API interface {
	WorkspaceAPI
	AssetAPI
	PartnerAPI
	WalletAPI
	TransactionAPI
	BookedAmountAPI
	RecurringPaymentAPI
	UserAPI
}

var _ API = (*client.Client)(nil)
