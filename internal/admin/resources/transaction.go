package resources

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type TransactionFunctions struct {
	API   TransactionAPI
	Clock Clock
}

func (f *TransactionFunctions) List(ctx context.Context, q entity.Query) (*models.PagedResponse[models.Transaction], error) {
	return f.API.Transactions(ctx, q.WorkspaceId, toQuery(q))
}

func (f *TransactionFunctions) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.API.DeleteTransaction(ctx, id)
}

func (f *TransactionFunctions) ToID(tx models.Transaction) primitive.ObjectID {
	return tx.Id
}

func (f *TransactionFunctions) Format(tx models.Transaction) string {
	label := tx.Name + " " + tx.Amount.StringFixed(2)
	if tx.Asset != nil {
		label += " " + tx.Asset.Code
	}
	return label + " on " + f.Clock.FormatDate(tx.Date)
}

func TransactionColumns(clock Clock) []entity.Column[models.Transaction] {
	return []entity.Column[models.Transaction]{
		{Title: "Date", Width: 19, Sort: "date", Render: func(tx models.Transaction) entity.Cell { return text(clock.FormatDateTime(tx.Date)) }},
		{Title: "Name", Width: 24, Sort: "name", Render: func(tx models.Transaction) entity.Cell { return text(tx.Name) }},
		{Title: "Amount", Width: 12, Sort: "amount", Render: func(tx models.Transaction) entity.Cell { return FormatAmount(tx.Amount) }},
		{Title: "Booked", Width: 12, Render: func(tx models.Transaction) entity.Cell { return FormatAmount(tx.Booked) }},
		{Title: "Asset", Width: 6, Render: func(tx models.Transaction) entity.Cell {
			if tx.Asset == nil {
				return text("")
			}
			return text(tx.Asset.Code)
		}},
		{Title: "Wallet", Width: 16, Render: func(tx models.Transaction) entity.Cell {
			if tx.Wallet == nil {
				return text("")
			}
			return text(tx.Wallet.Name)
		}},
		{Title: "Partner", Width: 16, Render: func(tx models.Transaction) entity.Cell {
			if tx.Partner == nil {
				return text("")
			}
			return text(tx.Partner.Name)
		}},
		{Title: "Status", Width: 10, Sort: "status", Render: func(tx models.Transaction) entity.Cell { return text(string(tx.Status)) }},
		{Title: "Type", Width: 8, Sort: "type", Render: func(tx models.Transaction) entity.Cell { return text(string(tx.Type)) }},
	}
}

type transactionInput struct {
	Name   string `json:"name" validate:"required,min=1,max=255"`
	Status string `json:"status" validate:"required,oneof=OPEN CLOSED CANCELLED"`
	Type   string `json:"type" validate:"required,oneof=PAYMENT BALANCE"`
	Notes  string `json:"notes" validate:"max=1024"`
}

type TransactionForm struct {
	API   TransactionAPI
	Clock Clock
}

func (f *TransactionForm) Fields() []entity.Field {
	return []entity.Field{
		{Name: "name", Label: "Name", Kind: entity.FieldText, Required: true},
		{Name: "amount", Label: "Amount", Kind: entity.FieldDecimal, Required: true},
		{Name: "date", Label: "Date", Kind: entity.FieldDateTime, Required: true},
		{Name: "status", Label: "Status", Kind: entity.FieldChoice, Required: true, Choices: choices([]models.TransactionStatus{
			models.TransactionStatusOpen, models.TransactionStatusClosed, models.TransactionStatusCancelled,
		})},
		{Name: "type", Label: "Type", Kind: entity.FieldChoice, Required: true, Choices: choices([]models.TransactionType{
			models.TransactionTypePayment, models.TransactionTypeBalance,
		})},
		{Name: "assetId", Label: "Asset", Kind: entity.FieldReference, Required: true, Reference: ReferenceAsset},
		{Name: "walletId", Label: "Wallet", Kind: entity.FieldReference, Required: true, Reference: ReferenceWallet},
		{Name: "partnerId", Label: "Partner", Kind: entity.FieldReference, Reference: ReferencePartner},
		{Name: "internalRefId", Label: "Linked transaction", Kind: entity.FieldReference, Reference: ReferenceTransaction},
		{Name: "notes", Label: "Notes", Kind: entity.FieldNotes},
	}
}

func (f *TransactionForm) Load(current *models.Transaction) entity.Values {
	if current == nil {
		return entity.Values{
			"name":          "",
			"amount":        "",
			"date":          f.Clock.FormatDate(f.Clock.Today()),
			"status":        string(models.TransactionStatusOpen),
			"type":          string(models.TransactionTypePayment),
			"assetId":       "",
			"walletId":      "",
			"partnerId":     "",
			"internalRefId": "",
			"notes":         "",
		}
	}

	var partner *primitive.ObjectID
	if current.Partner != nil {
		partner = &current.Partner.Id
	}
	return entity.Values{
		"name":          current.Name,
		"amount":        current.Amount.String(),
		"date":          f.Clock.FormatDateTime(current.Date),
		"status":        string(current.Status),
		"type":          string(current.Type),
		"assetId":       formatId(&current.AssetId),
		"walletId":      formatId(&current.WalletId),
		"partnerId":     referenceId(current.PartnerId, partner),
		"internalRefId": formatId(current.InternalRefId),
		"notes":         current.Notes,
	}
}

func (f *TransactionForm) Submit(ctx context.Context, workspaceId primitive.ObjectID, values entity.Values, current *models.Transaction) (models.Transaction, error) {
	errs := &entity.ValidationError{}
	amount := parseDecimal(values, "amount", errs)
	if amount == nil {
		errs.Add("amount", "amount is a required field")
	}
	var date *time.Time
	if current != nil {
		date = f.Clock.keepDate(values, "date", errs, &current.Date)
	} else {
		date = f.Clock.parseDate(values, "date", errs)
	}
	if date == nil {
		errs.Add("date", "date is a required field")
	}
	assetId := parseId(values, "assetId", errs)
	walletId := parseId(values, "walletId", errs)
	partnerId := parseOptionalId(values, "partnerId", errs)
	internalRefId := parseOptionalId(values, "internalRefId", errs)

	input := transactionInput{
		Name:   values.Get("name"),
		Status: values.Get("status"),
		Type:   values.Get("type"),
		Notes:  values.Get("notes"),
	}
	if err := entity.Validate(input, errs); err != nil {
		return models.Transaction{}, err
	}

	tx := &models.Transaction{
		WorkspaceId:   workspaceId,
		Name:          input.Name,
		Amount:        *amount,
		Date:          *date,
		Status:        models.TransactionStatus(input.Status),
		Type:          models.TransactionType(input.Type),
		AssetId:       assetId,
		WalletId:      walletId,
		PartnerId:     partnerId,
		InternalRefId: internalRefId,
		Notes:         input.Notes,
	}

	var saved *models.Transaction
	var err error
	if current == nil {
		saved, err = f.API.CreateTransaction(ctx, tx)
	} else {
		tx.Id = current.Id
		tx.WorkspaceId = current.WorkspaceId
		saved, err = f.API.UpdateTransaction(ctx, tx)
	}
	if err != nil {
		return models.Transaction{}, err
	}
	return *saved, nil
}
