package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
)

func list[T any](ctx context.Context, c *Client, path string, q Query) (*models.PagedResponse[T], error) {
	var page models.PagedResponse[T]
	if err := c.do(ctx, http.MethodGet, path, q.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func send[T any](ctx context.Context, c *Client, method string, path string, body any) (*T, error) {
	var out T
	if err := c.do(ctx, method, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func remove(ctx context.Context, c *Client, path string, id primitive.ObjectID) error {
	return c.do(ctx, http.MethodDelete, path+"/"+id.Hex(), nil, nil, nil)
}

func scoped(resource string, workspaceId primitive.ObjectID) string {
	return "/api/v2/" + resource + "/workspace/" + workspaceId.Hex()
}

func (c *Client) Workspaces(ctx context.Context, q Query) (*models.PagedResponse[models.Workspace], error) {
	return list[models.Workspace](ctx, c, "/api/v2/workspace", q)
}

func (c *Client) CreateWorkspace(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	return send[models.Workspace](ctx, c, http.MethodPost, "/api/v2/workspace", workspace)
}

func (c *Client) UpdateWorkspace(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	return send[models.Workspace](ctx, c, http.MethodPut, "/api/v2/workspace", workspace)
}

func (c *Client) DeleteWorkspace(ctx context.Context, id primitive.ObjectID) error {
	return remove(ctx, c, "/api/v2/workspace", id)
}

func (c *Client) Assets(ctx context.Context, workspaceId primitive.ObjectID, q Query) (*models.PagedResponse[models.Asset], error) {
	return list[models.Asset](ctx, c, scoped("asset", workspaceId), q)
}

func (c *Client) CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	return send[models.Asset](ctx, c, http.MethodPost, "/api/v2/asset", asset)
}

func (c *Client) UpdateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	return send[models.Asset](ctx, c, http.MethodPut, "/api/v2/asset", asset)
}

func (c *Client) DeleteAsset(ctx context.Context, id primitive.ObjectID) error {
	return remove(ctx, c, "/api/v2/asset", id)
}

func (c *Client) Partners(ctx context.Context, workspaceId primitive.ObjectID, q Query) (*models.PagedResponse[models.Partner], error) {
	return list[models.Partner](ctx, c, scoped("partner", workspaceId), q)
}

func (c *Client) CreatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	return send[models.Partner](ctx, c, http.MethodPost, "/api/v2/partner", partner)
}

func (c *Client) UpdatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	return send[models.Partner](ctx, c, http.MethodPut, "/api/v2/partner", partner)
}

func (c *Client) DeletePartner(ctx context.Context, id primitive.ObjectID) error {
	return remove(ctx, c, "/api/v2/partner", id)
}

func (c *Client) Wallets(ctx context.Context, workspaceId primitive.ObjectID, q Query) (*models.PagedResponse[models.Wallet], error) {
	return list[models.Wallet](ctx, c, scoped("wallet", workspaceId), q)
}

func (c *Client) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	return send[models.Wallet](ctx, c, http.MethodPost, "/api/v2/wallet", wallet)
}

func (c *Client) UpdateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	return send[models.Wallet](ctx, c, http.MethodPut, "/api/v2/wallet", wallet)
}

func (c *Client) DeleteWallet(ctx context.Context, id primitive.ObjectID) error {
	return remove(ctx, c, "/api/v2/wallet", id)
}

func (c *Client) Transactions(ctx context.Context, workspaceId primitive.ObjectID, q Query) (*models.PagedResponse[models.Transaction], error) {
	return list[models.Transaction](ctx, c, scoped("transaction", workspaceId), q)
}

func (c *Client) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	return send[models.Transaction](ctx, c, http.MethodPost, "/api/v2/transaction", tx)
}

// UpdateTransaction uses PATCH, the server flags changed generated
// transactions as user modified.
func (c *Client) UpdateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	return send[models.Transaction](ctx, c, http.MethodPatch, "/api/v2/transaction", tx)
}

func (c *Client) DeleteTransaction(ctx context.Context, id primitive.ObjectID) error {
	return remove(ctx, c, "/api/v2/transaction", id)
}

func (c *Client) BookedAmounts(ctx context.Context, transactionId primitive.ObjectID, q Query) (*models.PagedResponse[models.BookedAmount], error) {
	return list[models.BookedAmount](ctx, c, "/api/v2/transaction/"+transactionId.Hex()+"/book", q)
}

func (c *Client) CreateBookedAmount(ctx context.Context, booked *models.BookedAmount) (*models.BookedAmount, error) {
	return send[models.BookedAmount](ctx, c, http.MethodPost, "/api/v2/transaction/"+booked.TransactionId.Hex()+"/book", booked)
}

func (c *Client) UpdateBookedAmount(ctx context.Context, booked *models.BookedAmount) (*models.BookedAmount, error) {
	return send[models.BookedAmount](ctx, c, http.MethodPatch, "/api/v2/bookedamount", booked)
}

func (c *Client) DeleteBookedAmount(ctx context.Context, id primitive.ObjectID) error {
	return remove(ctx, c, "/api/v2/bookedamount", id)
}

func (c *Client) RecurringPayments(ctx context.Context, workspaceId primitive.ObjectID, q Query) (*models.PagedResponse[models.RecurringPayment], error) {
	return list[models.RecurringPayment](ctx, c, scoped("recurring", workspaceId), q)
}

func (c *Client) CreateRecurringPayment(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error) {
	return send[models.RecurringPayment](ctx, c, http.MethodPost, "/api/v2/recurring", payment)
}

func (c *Client) UpdateRecurringPayment(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error) {
	return send[models.RecurringPayment](ctx, c, http.MethodPut, "/api/v2/recurring", payment)
}

func (c *Client) DeleteRecurringPayment(ctx context.Context, id primitive.ObjectID) error {
	return remove(ctx, c, "/api/v2/recurring", id)
}

// UpdatePayments regenerates the pending payments. With overwriteModified
// the user modified ones are replaced too.
func (c *Client) UpdatePayments(ctx context.Context, id primitive.ObjectID, overwriteModified bool) (*models.PaymentUpdate, error) {
	query := url.Values{"overwriteModified": {strconv.FormatBool(overwriteModified)}}
	path := "/api/v2/recurring/" + id.Hex() + "/updatePayments"

	var update models.PaymentUpdate
	if err := c.do(ctx, http.MethodPost, path, query, nil, &update); err != nil {
		return nil, err
	}
	return &update, nil
}

// UserInput is the body of user writes. An empty password on update keeps
// the current one.
type UserInput struct {
	Id       *primitive.ObjectID `json:"id,omitempty"`
	Name     string              `json:"name"`
	Password string              `json:"password,omitempty"`
	Roles    []string            `json:"roles"`
}

func (c *Client) Users(ctx context.Context, q Query) (*models.PagedResponse[models.User], error) {
	return list[models.User](ctx, c, "/api/v2/user", q)
}

func (c *Client) CreateUser(ctx context.Context, user *UserInput) (*models.User, error) {
	return send[models.User](ctx, c, http.MethodPost, "/api/v2/user", user)
}

func (c *Client) UpdateUser(ctx context.Context, user *UserInput) (*models.User, error) {
	return send[models.User](ctx, c, http.MethodPut, "/api/v2/user", user)
}

func (c *Client) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return remove(ctx, c, "/api/v2/user", id)
}
