package booked_amount

import (
	"net/http"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookedAmountControllerBody struct {
	Amount   *decimal.Decimal   `json:"amount" validate:"required"`
	Date     string             `json:"date" validate:"required"`
	AssetId  primitive.ObjectID `json:"assetId" validate:"required"`
	WalletId primitive.ObjectID `json:"walletId" validate:"required"`
	Notes    string             `json:"notes" validate:"max=1024"`
}

// apply copies the body onto booked. Dates keep only their day, given either
// as 2006-01-02 or as a full timestamp.
func (b *BookedAmountControllerBody) apply(booked *models.BookedAmount) *presentationProtocols.HttpResponse {
	date, err := time.Parse(models.DateLayout, b.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, b.Date)
	}
	if err != nil {
		return helpers.CreateErrorResponse(http.StatusUnprocessableEntity, helpers.KeyValidation,
			"date must be a valid date (YYYY-MM-DD)")
	}

	booked.Amount = *b.Amount
	booked.Date = models.TruncateToDay(date)
	booked.AssetId = b.AssetId
	booked.WalletId = b.WalletId
	booked.Notes = b.Notes
	return nil
}

func references(booked *models.BookedAmount) []helpers.Ref {
	return []helpers.Ref{
		{Field: "assetId", Collection: models.AssetCollection, Id: &booked.AssetId},
		{Field: "walletId", Collection: models.WalletCollection, Id: &booked.WalletId},
	}
}
