package transaction

import (
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionControllerBody holds the fields shared by create and update.
type TransactionControllerBody struct {
	Name          string                   `json:"name" validate:"required,min=1,max=255"`
	Amount        *decimal.Decimal         `json:"amount" validate:"required"`
	Date          *time.Time               `json:"date" validate:"required"`
	Status        models.TransactionStatus `json:"status" validate:"omitempty,oneof=OPEN CLOSED CANCELLED"`
	Type          models.TransactionType   `json:"type" validate:"omitempty,oneof=PAYMENT BALANCE"`
	AssetId       primitive.ObjectID       `json:"assetId" validate:"required"`
	WalletId      primitive.ObjectID       `json:"walletId" validate:"required"`
	PartnerId     *primitive.ObjectID      `json:"partnerId"`
	InternalRefId *primitive.ObjectID      `json:"internalRefId"`
	Notes         string                   `json:"notes" validate:"max=1024"`
}

// apply copies the body onto tx, filling the default status and type.
func (b *TransactionControllerBody) apply(tx *models.Transaction) {
	tx.Name = b.Name
	tx.Amount = *b.Amount
	tx.Date = b.Date.UTC()
	tx.Status = b.Status
	if tx.Status == "" {
		tx.Status = models.TransactionStatusOpen
	}
	tx.Type = b.Type
	if tx.Type == "" {
		tx.Type = models.TransactionTypePayment
	}
	tx.AssetId = b.AssetId
	tx.WalletId = b.WalletId
	tx.PartnerId = helpers.OptionalId(b.PartnerId)
	tx.InternalRefId = helpers.OptionalId(b.InternalRefId)
	tx.Notes = b.Notes
}

func checkReferences(r presentationProtocols.HttpRequest, repo usecase.ReferenceExistsRepository, tx *models.Transaction) *presentationProtocols.HttpResponse {
	return helpers.CheckReferences(r.Req.Context(), repo, tx.WorkspaceId,
		helpers.Ref{Field: "assetId", Collection: models.AssetCollection, Id: &tx.AssetId},
		helpers.Ref{Field: "walletId", Collection: models.WalletCollection, Id: &tx.WalletId},
		helpers.Ref{Field: "partnerId", Collection: models.PartnerCollection, Id: tx.PartnerId},
		helpers.Ref{Field: "internalRefId", Collection: models.TransactionCollection, Id: tx.InternalRefId},
	)
}
