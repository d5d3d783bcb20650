package resources

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type AssetFunctions struct {
	API AssetAPI
}

func (f *AssetFunctions) List(ctx context.Context, q entity.Query) (*models.PagedResponse[models.Asset], error) {
	return f.API.Assets(ctx, q.WorkspaceId, toQuery(q))
}

func (f *AssetFunctions) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.API.DeleteAsset(ctx, id)
}

func (f *AssetFunctions) ToID(asset models.Asset) primitive.ObjectID {
	return asset.Id
}

func (f *AssetFunctions) Format(asset models.Asset) string {
	return fmt.Sprintf("%s (%s)", asset.Name, asset.Code)
}

func AssetColumns() []entity.Column[models.Asset] {
	return []entity.Column[models.Asset]{
		{Title: "Name", Width: 24, Sort: "name", Render: func(a models.Asset) entity.Cell { return text(a.Name) }},
		{Title: "Code", Width: 8, Sort: "code", Render: func(a models.Asset) entity.Cell { return text(a.Code) }},
		{Title: "Symbol", Width: 8, Sort: "symbol", Render: func(a models.Asset) entity.Cell { return text(a.Symbol) }},
		{Title: "Provider", Width: 20, Render: func(a models.Asset) entity.Cell {
			if a.Provider == nil {
				return text("")
			}
			return text(a.Provider.Name)
		}},
		{Title: "Notes", Width: 30, Render: func(a models.Asset) entity.Cell { return text(a.Notes) }},
	}
}

type assetInput struct {
	Name   string `json:"name" validate:"required,min=1,max=255"`
	Code   string `json:"code" validate:"required,min=3,max=12"`
	Symbol string `json:"symbol" validate:"max=10"`
	Notes  string `json:"notes" validate:"max=1024"`
}

type AssetForm struct {
	API AssetAPI
}

func (f *AssetForm) Fields() []entity.Field {
	return []entity.Field{
		{Name: "name", Label: "Name", Kind: entity.FieldText, Required: true},
		{Name: "code", Label: "Code", Kind: entity.FieldText, Required: true},
		{Name: "symbol", Label: "Symbol", Kind: entity.FieldText},
		{Name: "providerId", Label: "Provider", Kind: entity.FieldReference, Reference: ReferencePartner},
		{Name: "notes", Label: "Notes", Kind: entity.FieldNotes},
	}
}

func (f *AssetForm) Load(current *models.Asset) entity.Values {
	if current == nil {
		return entity.Values{"name": "", "code": "", "symbol": "", "providerId": "", "notes": ""}
	}

	var provider *primitive.ObjectID
	if current.Provider != nil {
		provider = &current.Provider.Id
	}
	return entity.Values{
		"name":       current.Name,
		"code":       current.Code,
		"symbol":     current.Symbol,
		"providerId": referenceId(current.ProviderId, provider),
		"notes":      current.Notes,
	}
}

func (f *AssetForm) Submit(ctx context.Context, workspaceId primitive.ObjectID, values entity.Values, current *models.Asset) (models.Asset, error) {
	errs := &entity.ValidationError{}
	providerId := parseOptionalId(values, "providerId", errs)

	input := assetInput{
		Name:   values.Get("name"),
		Code:   values.Get("code"),
		Symbol: values.Get("symbol"),
		Notes:  values.Get("notes"),
	}
	if err := entity.Validate(input, errs); err != nil {
		return models.Asset{}, err
	}

	asset := &models.Asset{
		WorkspaceId: workspaceId,
		Name:        input.Name,
		Code:        input.Code,
		Symbol:      input.Symbol,
		Notes:       input.Notes,
		ProviderId:  providerId,
	}

	var saved *models.Asset
	var err error
	if current == nil {
		saved, err = f.API.CreateAsset(ctx, asset)
	} else {
		asset.Id = current.Id
		asset.WorkspaceId = current.WorkspaceId
		saved, err = f.API.UpdateAsset(ctx, asset)
	}
	if err != nil {
		return models.Asset{}, err
	}
	return *saved, nil
}
