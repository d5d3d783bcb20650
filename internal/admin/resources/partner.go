package resources

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type PartnerFunctions struct {
	API PartnerAPI
}

func (f *PartnerFunctions) List(ctx context.Context, q entity.Query) (*models.PagedResponse[models.Partner], error) {
	return f.API.Partners(ctx, q.WorkspaceId, toQuery(q))
}

func (f *PartnerFunctions) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.API.DeletePartner(ctx, id)
}

func (f *PartnerFunctions) ToID(partner models.Partner) primitive.ObjectID {
	return partner.Id
}

func (f *PartnerFunctions) Format(partner models.Partner) string {
	return partner.Name
}

func PartnerColumns() []entity.Column[models.Partner] {
	return []entity.Column[models.Partner]{
		{Title: "Name", Width: 30, Sort: "name", Render: func(p models.Partner) entity.Cell { return text(p.Name) }},
		{Title: "Type", Width: 14, Sort: "type", Render: func(p models.Partner) entity.Cell { return text(string(p.Type)) }},
		{Title: "Notes", Width: 30, Render: func(p models.Partner) entity.Cell { return text(p.Notes) }},
	}
}

type partnerInput struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Type  string `json:"type" validate:"required,oneof=BANK COMPANY PERSON GOVERNMENTAL EXCHANGE OTHER"`
	Notes string `json:"notes" validate:"max=1024"`
}

type PartnerForm struct {
	API PartnerAPI
}

func (f *PartnerForm) Fields() []entity.Field {
	return []entity.Field{
		{Name: "name", Label: "Name", Kind: entity.FieldText, Required: true},
		{Name: "type", Label: "Type", Kind: entity.FieldChoice, Required: true, Choices: choices(models.PartnerTypes)},
		{Name: "notes", Label: "Notes", Kind: entity.FieldNotes},
	}
}

func (f *PartnerForm) Load(current *models.Partner) entity.Values {
	if current == nil {
		return entity.Values{"name": "", "type": string(models.PartnerTypeOther), "notes": ""}
	}
	return entity.Values{"name": current.Name, "type": string(current.Type), "notes": current.Notes}
}

func (f *PartnerForm) Submit(ctx context.Context, workspaceId primitive.ObjectID, values entity.Values, current *models.Partner) (models.Partner, error) {
	input := partnerInput{
		Name:  values.Get("name"),
		Type:  values.Get("type"),
		Notes: values.Get("notes"),
	}
	if err := entity.Validate(input, nil); err != nil {
		return models.Partner{}, err
	}

	partner := &models.Partner{
		WorkspaceId: workspaceId,
		Name:        input.Name,
		Type:        models.PartnerType(input.Type),
		Notes:       input.Notes,
	}

	var saved *models.Partner
	var err error
	if current == nil {
		saved, err = f.API.CreatePartner(ctx, partner)
	} else {
		partner.Id = current.Id
		partner.WorkspaceId = current.WorkspaceId
		saved, err = f.API.UpdatePartner(ctx, partner)
	}
	if err != nil {
		return models.Partner{}, err
	}
	return *saved, nil
}
