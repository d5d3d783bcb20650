package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/auth"
)

func MakeLoginController(app *App) *auth.LoginController {
	findUserByNameRepository := user_repository.NewFindUserByNameRepository(app.Db)
	return auth.NewLoginController(findUserByNameRepository, app.Session)
}

func MakeLogoutController(app *App) *auth.LogoutController {
	return auth.NewLogoutController(app.Session)
}

func MakeMeController() *auth.MeController {
	return auth.NewMeController()
}
