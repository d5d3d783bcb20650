package resources

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

const (
	ReferenceAsset       = "asset"
	ReferencePartner     = "partner"
	ReferenceWallet      = "wallet"
	ReferenceTransaction = "transaction"
)

// Option is a selectable entity of a reference field.
type Option struct {
	Id    string
	Label string
}

// Set holds the lists of every resource, all sharing one notifier.
type Set struct {
	API      API
	Notifier entity.Notifier
	Clock    Clock

	Workspaces        *entity.List[models.Workspace, primitive.ObjectID]
	Assets            *entity.List[models.Asset, primitive.ObjectID]
	Partners          *entity.List[models.Partner, primitive.ObjectID]
	Wallets           *entity.List[models.Wallet, primitive.ObjectID]
	Transactions      *entity.List[models.Transaction, primitive.ObjectID]
	RecurringPayments *entity.List[models.RecurringPayment, primitive.ObjectID]
	Users             *entity.List[models.User, primitive.ObjectID]
}

// NewSet builds the lists, showing dates with clock. onWorkspace is called
// with every created or updated workspace.
func NewSet(api API, notifier entity.Notifier, clock Clock, onWorkspace func(models.Workspace)) *Set {
	s := &Set{API: api, Notifier: notifier, Clock: clock}

	s.Workspaces = entity.NewList[models.Workspace, primitive.ObjectID](&WorkspaceFunctions{API: api}, &WorkspaceForm{API: api}, notifier, onWorkspace)
	s.Workspaces.Columns = WorkspaceColumns()

	s.Assets = entity.NewList[models.Asset, primitive.ObjectID](&AssetFunctions{API: api}, &AssetForm{API: api}, notifier, nil)
	s.Assets.Columns = AssetColumns()

	s.Partners = entity.NewList[models.Partner, primitive.ObjectID](&PartnerFunctions{API: api}, &PartnerForm{API: api}, notifier, nil)
	s.Partners.Columns = PartnerColumns()

	s.Wallets = entity.NewList[models.Wallet, primitive.ObjectID](&WalletFunctions{API: api}, &WalletForm{API: api}, notifier, nil)
	s.Wallets.Columns = WalletColumns()

	s.Transactions = entity.NewList[models.Transaction, primitive.ObjectID](&TransactionFunctions{API: api, Clock: clock}, &TransactionForm{API: api, Clock: clock}, notifier, nil)
	s.Transactions.Columns = TransactionColumns(clock)
	s.Transactions.SetSort([]models.SortOrder{{Field: "date", Direction: models.SortDescending}})

	recurring := &RecurringPaymentFunctions{API: api}
	s.RecurringPayments = entity.NewList[models.RecurringPayment, primitive.ObjectID](recurring, &RecurringPaymentForm{API: api, Clock: clock}, notifier, func(models.RecurringPayment) {
		s.Transactions.Bump()
	})
	s.RecurringPayments.Columns = RecurringPaymentColumns(clock)
	s.RecurringPayments.Actions = []entity.Action[models.RecurringPayment]{
		recurring.UpdatePaymentsAction("u", false),
		recurring.UpdatePaymentsAction("U", true),
	}

	s.Users = entity.NewList[models.User, primitive.ObjectID](&UserFunctions{API: api}, &UserForm{API: api}, notifier, nil)
	s.Users.Columns = UserColumns()

	return s
}

// SetWorkspace scopes every workspace bound list to workspace.
func (s *Set) SetWorkspace(workspace primitive.ObjectID) {
	s.Assets.SetWorkspace(workspace)
	s.Partners.SetWorkspace(workspace)
	s.Wallets.SetWorkspace(workspace)
	s.Transactions.SetWorkspace(workspace)
	s.RecurringPayments.SetWorkspace(workspace)
}

// BookedAmounts builds the list of the booked amounts of tx. Changes also
// mark the transactions as outdated since their booked sum moves.
func (s *Set) BookedAmounts(tx models.Transaction) *entity.List[models.BookedAmount, primitive.ObjectID] {
	functions := &BookedAmountFunctions{API: s.API, Transaction: tx, Clock: s.Clock}
	form := &BookedAmountForm{API: s.API, Transaction: tx, Clock: s.Clock}

	list := entity.NewList[models.BookedAmount, primitive.ObjectID](functions, form, s.Notifier, func(models.BookedAmount) {
		s.Transactions.Bump()
	})
	list.DeleteDialog.OnDeleted = func(models.BookedAmount) {
		list.Bump()
		s.Transactions.Bump()
	}
	list.Columns = BookedAmountColumns(s.Clock)
	list.SetWorkspace(tx.WorkspaceId)
	return list
}

// Options lists the entities a reference field can point to.
func (s *Set) Options(ctx context.Context, workspace primitive.ObjectID, reference string) ([]Option, error) {
	query := entity.Query{Size: models.MaxPageSize, WorkspaceId: workspace, Sort: []models.SortOrder{{Field: "name", Direction: models.SortAscending}}}

	switch reference {
	case ReferenceAsset:
		return options(ctx, &AssetFunctions{API: s.API}, query)
	case ReferencePartner:
		return options(ctx, &PartnerFunctions{API: s.API}, query)
	case ReferenceWallet:
		return options(ctx, &WalletFunctions{API: s.API}, query)
	case ReferenceTransaction:
		query.Sort = []models.SortOrder{{Field: "date", Direction: models.SortDescending}}
		return options(ctx, &TransactionFunctions{API: s.API, Clock: s.Clock}, query)
	}
	return nil, fmt.Errorf("unknown reference %q", reference)
}

func options[E any](ctx context.Context, functions entity.Functions[E, primitive.ObjectID], query entity.Query) ([]Option, error) {
	page, err := functions.List(ctx, query)
	if err != nil {
		return nil, err
	}

	result := make([]Option, 0, len(page.Data))
	for _, row := range page.Data {
		result = append(result, Option{Id: functions.ToID(row).Hex(), Label: functions.Format(row)})
	}
	return result, nil
}
