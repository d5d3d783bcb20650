package resources

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

// BookedAmountFunctions lists the booked amounts of one transaction.
type BookedAmountFunctions struct {
	API         BookedAmountAPI
	Transaction models.Transaction
	Clock       Clock
}

func (f *BookedAmountFunctions) List(ctx context.Context, q entity.Query) (*models.PagedResponse[models.BookedAmount], error) {
	return f.API.BookedAmounts(ctx, f.Transaction.Id, toQuery(q))
}

func (f *BookedAmountFunctions) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.API.DeleteBookedAmount(ctx, id)
}

func (f *BookedAmountFunctions) ToID(booked models.BookedAmount) primitive.ObjectID {
	return booked.Id
}

func (f *BookedAmountFunctions) Format(booked models.BookedAmount) string {
	return booked.Amount.StringFixed(2) + " on " + f.Clock.FormatDate(booked.Date)
}

func BookedAmountColumns(clock Clock) []entity.Column[models.BookedAmount] {
	return []entity.Column[models.BookedAmount]{
		{Title: "Date", Width: 12, Sort: "date", Render: func(b models.BookedAmount) entity.Cell { return text(clock.FormatDate(b.Date)) }},
		{Title: "Amount", Width: 12, Sort: "amount", Render: func(b models.BookedAmount) entity.Cell { return FormatAmount(b.Amount) }},
		{Title: "Notes", Width: 40, Render: func(b models.BookedAmount) entity.Cell { return text(b.Notes) }},
	}
}

type bookedAmountInput struct {
	Notes string `json:"notes" validate:"max=1024"`
}

// BookedAmountForm books parts of Transaction. New bookings default to the
// amount still open, on the transaction's asset and wallet.
type BookedAmountForm struct {
	API         BookedAmountAPI
	Transaction models.Transaction
	Clock       Clock
}

func (f *BookedAmountForm) Fields() []entity.Field {
	return []entity.Field{
		{Name: "amount", Label: "Amount", Kind: entity.FieldDecimal, Required: true},
		{Name: "date", Label: "Date", Kind: entity.FieldDate, Required: true},
		{Name: "assetId", Label: "Asset", Kind: entity.FieldReference, Required: true, Reference: ReferenceAsset},
		{Name: "walletId", Label: "Wallet", Kind: entity.FieldReference, Required: true, Reference: ReferenceWallet},
		{Name: "notes", Label: "Notes", Kind: entity.FieldNotes},
	}
}

func (f *BookedAmountForm) Load(current *models.BookedAmount) entity.Values {
	if current == nil {
		return entity.Values{
			"amount":   f.Transaction.Amount.Sub(f.Transaction.Booked).String(),
			"date":     f.Clock.FormatDate(f.Clock.Today()),
			"assetId":  formatId(&f.Transaction.AssetId),
			"walletId": formatId(&f.Transaction.WalletId),
			"notes":    "",
		}
	}
	return entity.Values{
		"amount":   current.Amount.String(),
		"date":     f.Clock.FormatDate(current.Date),
		"assetId":  formatId(&current.AssetId),
		"walletId": formatId(&current.WalletId),
		"notes":    current.Notes,
	}
}

func (f *BookedAmountForm) Submit(ctx context.Context, _ primitive.ObjectID, values entity.Values, current *models.BookedAmount) (models.BookedAmount, error) {
	errs := &entity.ValidationError{}
	amount := parseDecimal(values, "amount", errs)
	if amount == nil {
		errs.Add("amount", "amount is a required field")
	}
	date := f.Clock.parseDate(values, "date", errs)
	if date == nil {
		errs.Add("date", "date is a required field")
	}
	assetId := parseId(values, "assetId", errs)
	walletId := parseId(values, "walletId", errs)

	input := bookedAmountInput{Notes: values.Get("notes")}
	if err := entity.Validate(input, errs); err != nil {
		return models.BookedAmount{}, err
	}

	booked := &models.BookedAmount{
		TransactionId: f.Transaction.Id,
		Amount:        *amount,
		Date:          models.TruncateToDay(*date),
		AssetId:       assetId,
		WalletId:      walletId,
		Notes:         input.Notes,
	}

	var saved *models.BookedAmount
	var err error
	if current == nil {
		saved, err = f.API.CreateBookedAmount(ctx, booked)
	} else {
		booked.Id = current.Id
		booked.TransactionId = current.TransactionId
		saved, err = f.API.UpdateBookedAmount(ctx, booked)
	}
	if err != nil {
		return models.BookedAmount{}, err
	}
	return *saved, nil
}
