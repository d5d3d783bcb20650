package recurring_payment

import (
	"net/http"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecurringPaymentControllerBody struct {
	Name         string                        `json:"name" validate:"required,min=1,max=255"`
	Amount       *decimal.Decimal              `json:"amount" validate:"required"`
	Type         models.TransactionType        `json:"type" validate:"omitempty,oneof=PAYMENT BALANCE"`
	AssetId      primitive.ObjectID            `json:"assetId" validate:"required"`
	WalletId     primitive.ObjectID            `json:"walletId" validate:"required"`
	PartnerId    *primitive.ObjectID           `json:"partnerId"`
	Notes        string                        `json:"notes" validate:"max=1024"`
	CronSchedule string                        `json:"cronSchedule" validate:"required,cron"`
	NotBefore    *time.Time                    `json:"notBefore"`
	NotAfter     *time.Time                    `json:"notAfter"`
	Status       models.RecurringPaymentStatus `json:"status" validate:"omitempty,oneof=ACTIVE EXPIRED SUSPENDED CANCELLED"`
}

func (b *RecurringPaymentControllerBody) apply(payment *models.RecurringPayment) *presentationProtocols.HttpResponse {
	if b.NotBefore != nil && b.NotAfter != nil && b.NotAfter.Before(*b.NotBefore) {
		return helpers.CreateErrorResponse(http.StatusUnprocessableEntity, helpers.KeyValidation,
			"notAfter must not be before notBefore")
	}

	payment.Name = b.Name
	payment.Amount = *b.Amount
	payment.Type = b.Type
	if payment.Type == "" {
		payment.Type = models.TransactionTypePayment
	}
	payment.AssetId = b.AssetId
	payment.WalletId = b.WalletId
	payment.PartnerId = helpers.OptionalId(b.PartnerId)
	payment.Notes = b.Notes
	payment.CronSchedule = b.CronSchedule
	payment.NotBefore = utc(b.NotBefore)
	payment.NotAfter = utc(b.NotAfter)
	payment.Status = b.Status
	if payment.Status == "" {
		payment.Status = models.RecurringPaymentStatusActive
	}
	return nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := t.UTC()
	return &value
}

func checkReferences(r presentationProtocols.HttpRequest, repo usecase.ReferenceExistsRepository, payment *models.RecurringPayment) *presentationProtocols.HttpResponse {
	return helpers.CheckReferences(r.Req.Context(), repo, payment.WorkspaceId,
		helpers.Ref{Field: "assetId", Collection: models.AssetCollection, Id: &payment.AssetId},
		helpers.Ref{Field: "walletId", Collection: models.WalletCollection, Id: &payment.WalletId},
		helpers.Ref{Field: "partnerId", Collection: models.PartnerCollection, Id: payment.PartnerId},
	)
}
