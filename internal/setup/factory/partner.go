package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/partner_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/workspace_repository"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/partner"
)

func MakeCreatePartnerController(app *App) *partner.CreatePartnerController {
	createPartnerRepository := partner_repository.NewCreatePartnerRepository(app.Db)
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(app.Db)
	return partner.NewCreatePartnerController(createPartnerRepository, findWorkspaceByIdRepository)
}

func MakeGetPartnersController(app *App) *partner.GetPartnersController {
	findPartnersRepository := partner_repository.NewFindPartnersByWorkspaceIdRepository(app.Db)
	return partner.NewGetPartnersController(findPartnersRepository)
}

func MakeUpdatePartnerController(app *App) *partner.UpdatePartnerController {
	updatePartnerRepository := partner_repository.NewUpdatePartnerRepository(app.Db)
	findPartnerByIdRepository := partner_repository.NewFindPartnerByIdRepository(app.Db)
	return partner.NewUpdatePartnerController(updatePartnerRepository, findPartnerByIdRepository)
}

func MakeDeletePartnerController(app *App) *partner.DeletePartnerController {
	deletePartnerRepository := partner_repository.NewDeletePartnerRepository(app.Db)
	findPartnerByIdRepository := partner_repository.NewFindPartnerByIdRepository(app.Db)
	dependentsRepository := partner_repository.NewPartnerDependentsRepository(app.Db)
	return partner.NewDeletePartnerController(deletePartnerRepository, findPartnerByIdRepository, dependentsRepository)
}
