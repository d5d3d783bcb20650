package partner

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase/usecasetest"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/controllertest"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
)

func TestCreatePartnerRejectsUnknownType(t *testing.T) {
	workspaces := usecasetest.NewWorkspaces()
	partners := usecasetest.NewPartners()
	workspace := workspaces.Put(models.Workspace{Name: "Private"})

	controller := NewCreatePartnerController(partners, workspaces.ById())
	response := controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/partner", map[string]any{
		"workspaceId": workspace.Id.Hex(),
		"name":        "ACME",
		"type":        "ALIEN",
	}, nil))
	controllertest.RequireError(t, response, http.StatusUnprocessableEntity, helpers.KeyValidation)

	response = controller.Handle(controllertest.NewRequest(http.MethodPost, "/api/v2/partner", map[string]any{
		"workspaceId": workspace.Id.Hex(),
		"name":        "ACME",
		"type":        "COMPANY",
	}, nil))
	require.Equal(t, http.StatusCreated, response.StatusCode)

	created := controllertest.Decode[models.Partner](t, response)
	assert.Equal(t, models.PartnerTypeCompany, created.Type)
	assert.Equal(t, workspace.Id, created.WorkspaceId)
}

func TestUpdatePartner(t *testing.T) {
	partners := usecasetest.NewPartners()
	partner := partners.Put(models.Partner{Name: "ACME", Type: models.PartnerTypeCompany})

	controller := NewUpdatePartnerController(partners, partners.ById())
	response := controller.Handle(controllertest.NewRequest(http.MethodPatch, "/api/v2/partner", map[string]any{
		"id":    partner.Id.Hex(),
		"name":  "ACME Bank",
		"type":  "BANK",
		"notes": "main bank",
	}, nil))
	require.Equal(t, http.StatusOK, response.StatusCode)

	stored := partners.Get(partner.Id)
	assert.Equal(t, "ACME Bank", stored.Name)
	assert.Equal(t, models.PartnerTypeBank, stored.Type)
	assert.Equal(t, "main bank", stored.Notes)
}

func TestDeletePartnerUsedAsProvider(t *testing.T) {
	partners := usecasetest.NewPartners()
	partner := partners.Put(models.Partner{Name: "ACME", Type: models.PartnerTypeBank})
	dependents := usecasetest.Dependents{partner.Id: true}

	controller := NewDeletePartnerController(partners, partners.ById(), dependents)
	response := controller.Handle(controllertest.NewRequest(http.MethodDelete, "/api/v2/partner/"+partner.Id.Hex(), nil,
		map[string]string{"id": partner.Id.Hex()}))
	controllertest.RequireError(t, response, http.StatusConflict, helpers.KeyDeleteDependents)
	assert.NotNil(t, partners.Get(partner.Id))
}
