package resources

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type RecurringPaymentFunctions struct {
	API RecurringPaymentAPI
}

func (f *RecurringPaymentFunctions) List(ctx context.Context, q entity.Query) (*models.PagedResponse[models.RecurringPayment], error) {
	return f.API.RecurringPayments(ctx, q.WorkspaceId, toQuery(q))
}

func (f *RecurringPaymentFunctions) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.API.DeleteRecurringPayment(ctx, id)
}

func (f *RecurringPaymentFunctions) ToID(payment models.RecurringPayment) primitive.ObjectID {
	return payment.Id
}

func (f *RecurringPaymentFunctions) Format(payment models.RecurringPayment) string {
	return fmt.Sprintf("%s %s (%s)", payment.Name, payment.Amount.StringFixed(2), payment.CronSchedule)
}

// UpdatePaymentsAction regenerates the pending payments of a row. With
// force the user modified payments are replaced too.
func (f *RecurringPaymentFunctions) UpdatePaymentsAction(key string, force bool) entity.Action[models.RecurringPayment] {
	label := "update payments"
	if force {
		label = "update payments, overwrite modified"
	}
	return entity.Action[models.RecurringPayment]{
		Key:   key,
		Label: label,
		Run: func(ctx context.Context, payment models.RecurringPayment) (string, error) {
			update, err := f.API.UpdatePayments(ctx, payment.Id, force)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s: %d payments removed, %d created", payment.Name, len(update.Delete), len(update.Create)), nil
		},
	}
}

func RecurringPaymentColumns(clock Clock) []entity.Column[models.RecurringPayment] {
	return []entity.Column[models.RecurringPayment]{
		{Title: "Name", Width: 22, Sort: "name", Render: func(p models.RecurringPayment) entity.Cell { return text(p.Name) }},
		{Title: "Amount", Width: 12, Sort: "amount", Render: func(p models.RecurringPayment) entity.Cell { return FormatAmount(p.Amount) }},
		{Title: "Schedule", Width: 16, Sort: "cronSchedule", Render: func(p models.RecurringPayment) entity.Cell { return text(p.CronSchedule) }},
		{Title: "Next", Width: 19, Render: func(p models.RecurringPayment) entity.Cell {
			if p.NextPaymentDate == nil {
				return text("")
			}
			return text(clock.FormatDateTime(*p.NextPaymentDate))
		}},
		{Title: "From", Width: 10, Sort: "notBefore", Render: func(p models.RecurringPayment) entity.Cell { return text(clock.formatOptionalDate(p.NotBefore)) }},
		{Title: "Until", Width: 10, Sort: "notAfter", Render: func(p models.RecurringPayment) entity.Cell { return text(clock.formatOptionalDate(p.NotAfter)) }},
		{Title: "Status", Width: 10, Sort: "status", Render: func(p models.RecurringPayment) entity.Cell { return text(string(p.Status)) }},
	}
}

type recurringPaymentInput struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Type         string `json:"type" validate:"required,oneof=PAYMENT BALANCE"`
	Status       string `json:"status" validate:"required,oneof=ACTIVE EXPIRED SUSPENDED CANCELLED"`
	CronSchedule string `json:"cronSchedule" validate:"required,cron"`
	Notes        string `json:"notes" validate:"max=1024"`
}

type RecurringPaymentForm struct {
	API   RecurringPaymentAPI
	Clock Clock
}

func (f *RecurringPaymentForm) Fields() []entity.Field {
	return []entity.Field{
		{Name: "name", Label: "Name", Kind: entity.FieldText, Required: true},
		{Name: "amount", Label: "Amount", Kind: entity.FieldDecimal, Required: true},
		{Name: "type", Label: "Type", Kind: entity.FieldChoice, Required: true, Choices: choices([]models.TransactionType{
			models.TransactionTypePayment, models.TransactionTypeBalance,
		})},
		{Name: "cronSchedule", Label: "Schedule (sec min hour dom month dow)", Kind: entity.FieldCron, Required: true},
		{Name: "notBefore", Label: "Not before", Kind: entity.FieldDateTime},
		{Name: "notAfter", Label: "Not after", Kind: entity.FieldDateTime},
		{Name: "status", Label: "Status", Kind: entity.FieldChoice, Required: true, Choices: choices([]models.RecurringPaymentStatus{
			models.RecurringPaymentStatusActive,
			models.RecurringPaymentStatusSuspended,
			models.RecurringPaymentStatusCancelled,
			models.RecurringPaymentStatusExpired,
		})},
		{Name: "assetId", Label: "Asset", Kind: entity.FieldReference, Required: true, Reference: ReferenceAsset},
		{Name: "walletId", Label: "Wallet", Kind: entity.FieldReference, Required: true, Reference: ReferenceWallet},
		{Name: "partnerId", Label: "Partner", Kind: entity.FieldReference, Reference: ReferencePartner},
		{Name: "notes", Label: "Notes", Kind: entity.FieldNotes},
	}
}

func (f *RecurringPaymentForm) Load(current *models.RecurringPayment) entity.Values {
	if current == nil {
		return entity.Values{
			"name":         "",
			"amount":       "",
			"type":         string(models.TransactionTypePayment),
			"cronSchedule": "0 0 0 1 * *",
			"notBefore":    "",
			"notAfter":     "",
			"status":       string(models.RecurringPaymentStatusActive),
			"assetId":      "",
			"walletId":     "",
			"partnerId":    "",
			"notes":        "",
		}
	}

	var partner *primitive.ObjectID
	if current.Partner != nil {
		partner = &current.Partner.Id
	}
	return entity.Values{
		"name":         current.Name,
		"amount":       current.Amount.String(),
		"type":         string(current.Type),
		"cronSchedule": current.CronSchedule,
		"notBefore":    f.Clock.formatOptionalDateTime(current.NotBefore),
		"notAfter":     f.Clock.formatOptionalDateTime(current.NotAfter),
		"status":       string(current.Status),
		"assetId":      formatId(&current.AssetId),
		"walletId":     formatId(&current.WalletId),
		"partnerId":    referenceId(current.PartnerId, partner),
		"notes":        current.Notes,
	}
}

func (f *RecurringPaymentForm) Submit(ctx context.Context, workspaceId primitive.ObjectID, values entity.Values, current *models.RecurringPayment) (models.RecurringPayment, error) {
	errs := &entity.ValidationError{}
	amount := parseDecimal(values, "amount", errs)
	if amount == nil {
		errs.Add("amount", "amount is a required field")
	}
	var notBefore, notAfter *time.Time
	if current != nil {
		notBefore = f.Clock.keepDate(values, "notBefore", errs, current.NotBefore)
		notAfter = f.Clock.keepDate(values, "notAfter", errs, current.NotAfter)
	} else {
		notBefore = f.Clock.parseDate(values, "notBefore", errs)
		notAfter = f.Clock.parseDate(values, "notAfter", errs)
	}
	if notBefore != nil && notAfter != nil && notAfter.Before(*notBefore) {
		errs.Add("notAfter", "notAfter must not be before notBefore")
	}
	assetId := parseId(values, "assetId", errs)
	walletId := parseId(values, "walletId", errs)
	partnerId := parseOptionalId(values, "partnerId", errs)

	input := recurringPaymentInput{
		Name:         values.Get("name"),
		Type:         values.Get("type"),
		Status:       values.Get("status"),
		CronSchedule: values.Get("cronSchedule"),
		Notes:        values.Get("notes"),
	}
	if err := entity.Validate(input, errs); err != nil {
		return models.RecurringPayment{}, err
	}

	payment := &models.RecurringPayment{
		WorkspaceId:  workspaceId,
		Name:         input.Name,
		Amount:       *amount,
		Type:         models.TransactionType(input.Type),
		Status:       models.RecurringPaymentStatus(input.Status),
		CronSchedule: input.CronSchedule,
		NotBefore:    notBefore,
		NotAfter:     notAfter,
		AssetId:      assetId,
		WalletId:     walletId,
		PartnerId:    partnerId,
		Notes:        input.Notes,
	}

	var saved *models.RecurringPayment
	var err error
	if current == nil {
		saved, err = f.API.CreateRecurringPayment(ctx, payment)
	} else {
		payment.Id = current.Id
		payment.WorkspaceId = current.WorkspaceId
		saved, err = f.API.UpdateRecurringPayment(ctx, payment)
	}
	if err != nil {
		return models.RecurringPayment{}, err
	}
	return *saved, nil
}
