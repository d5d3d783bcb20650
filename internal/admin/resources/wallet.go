package resources

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type WalletFunctions struct {
	API WalletAPI
}

func (f *WalletFunctions) List(ctx context.Context, q entity.Query) (*models.PagedResponse[models.Wallet], error) {
	return f.API.Wallets(ctx, q.WorkspaceId, toQuery(q))
}

func (f *WalletFunctions) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.API.DeleteWallet(ctx, id)
}

func (f *WalletFunctions) ToID(wallet models.Wallet) primitive.ObjectID {
	return wallet.Id
}

func (f *WalletFunctions) Format(wallet models.Wallet) string {
	if wallet.Asset != nil {
		return wallet.Name + " (" + wallet.Asset.Code + ")"
	}
	return wallet.Name
}

func WalletColumns() []entity.Column[models.Wallet] {
	return []entity.Column[models.Wallet]{
		{Title: "Name", Width: 24, Sort: "name", Render: func(w models.Wallet) entity.Cell { return text(w.Name) }},
		{Title: "Asset", Width: 10, Render: func(w models.Wallet) entity.Cell {
			if w.Asset == nil {
				return text("")
			}
			return text(w.Asset.Code)
		}},
		{Title: "Provider", Width: 20, Render: func(w models.Wallet) entity.Cell {
			if w.Provider == nil {
				return text("")
			}
			return text(w.Provider.Name)
		}},
		{Title: "Notes", Width: 30, Render: func(w models.Wallet) entity.Cell { return text(w.Notes) }},
	}
}

type walletInput struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Notes string `json:"notes" validate:"max=1024"`
}

type WalletForm struct {
	API WalletAPI
}

func (f *WalletForm) Fields() []entity.Field {
	return []entity.Field{
		{Name: "name", Label: "Name", Kind: entity.FieldText, Required: true},
		{Name: "assetId", Label: "Asset", Kind: entity.FieldReference, Reference: ReferenceAsset},
		{Name: "providerId", Label: "Provider", Kind: entity.FieldReference, Reference: ReferencePartner},
		{Name: "notes", Label: "Notes", Kind: entity.FieldNotes},
	}
}

func (f *WalletForm) Load(current *models.Wallet) entity.Values {
	if current == nil {
		return entity.Values{"name": "", "assetId": "", "providerId": "", "notes": ""}
	}

	var asset, provider *primitive.ObjectID
	if current.Asset != nil {
		asset = &current.Asset.Id
	}
	if current.Provider != nil {
		provider = &current.Provider.Id
	}
	return entity.Values{
		"name":       current.Name,
		"assetId":    referenceId(current.AssetId, asset),
		"providerId": referenceId(current.ProviderId, provider),
		"notes":      current.Notes,
	}
}

func (f *WalletForm) Submit(ctx context.Context, workspaceId primitive.ObjectID, values entity.Values, current *models.Wallet) (models.Wallet, error) {
	errs := &entity.ValidationError{}
	assetId := parseOptionalId(values, "assetId", errs)
	providerId := parseOptionalId(values, "providerId", errs)

	input := walletInput{Name: values.Get("name"), Notes: values.Get("notes")}
	if err := entity.Validate(input, errs); err != nil {
		return models.Wallet{}, err
	}

	wallet := &models.Wallet{
		WorkspaceId: workspaceId,
		Name:        input.Name,
		Notes:       input.Notes,
		AssetId:     assetId,
		ProviderId:  providerId,
	}

	var saved *models.Wallet
	var err error
	if current == nil {
		saved, err = f.API.CreateWallet(ctx, wallet)
	} else {
		wallet.Id = current.Id
		wallet.WorkspaceId = current.WorkspaceId
		saved, err = f.API.UpdateWallet(ctx, wallet)
	}
	if err != nil {
		return models.Wallet{}, err
	}
	return *saved, nil
}
