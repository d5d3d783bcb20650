package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/user"
)

func MakeCreateUserController(app *App) *user.CreateUserController {
	createUserRepository := user_repository.NewCreateUserRepository(app.Db)
	findUserByNameRepository := user_repository.NewFindUserByNameRepository(app.Db)
	return user.NewCreateUserController(createUserRepository, findUserByNameRepository)
}

func MakeGetUsersController(app *App) *user.GetUsersController {
	findUsersRepository := user_repository.NewFindUsersRepository(app.Db)
	return user.NewGetUsersController(findUsersRepository)
}

func MakeUpdateUserController(app *App) *user.UpdateUserController {
	updateUserRepository := user_repository.NewUpdateUserRepository(app.Db)
	findUserByIdRepository := user_repository.NewFindUserByIdRepository(app.Db)
	findUserByNameRepository := user_repository.NewFindUserByNameRepository(app.Db)
	countUsersRepository := user_repository.NewFindUsersRepository(app.Db)
	return user.NewUpdateUserController(updateUserRepository, findUserByIdRepository, findUserByNameRepository, countUsersRepository)
}

func MakeDeleteUserController(app *App) *user.DeleteUserController {
	deleteUserRepository := user_repository.NewDeleteUserRepository(app.Db)
	findUserByIdRepository := user_repository.NewFindUserByIdRepository(app.Db)
	countUsersRepository := user_repository.NewFindUsersRepository(app.Db)
	return user.NewDeleteUserController(deleteUserRepository, findUserByIdRepository, countUsersRepository)
}
