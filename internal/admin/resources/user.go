package resources

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/client"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type UserFunctions struct {
	API UserAPI
}

func (f *UserFunctions) List(ctx context.Context, q entity.Query) (*models.PagedResponse[models.User], error) {
	return f.API.Users(ctx, toQuery(q))
}

func (f *UserFunctions) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.API.DeleteUser(ctx, id)
}

func (f *UserFunctions) ToID(user models.User) primitive.ObjectID {
	return user.Id
}

func (f *UserFunctions) Format(user models.User) string {
	return user.Name
}

func UserColumns() []entity.Column[models.User] {
	return []entity.Column[models.User]{
		{Title: "Name", Width: 30, Sort: "name", Render: func(u models.User) entity.Cell { return text(u.Name) }},
		{Title: "Roles", Width: 20, Render: func(u models.User) entity.Cell { return text(strings.Join(u.Roles, ", ")) }},
	}
}

type userInput struct {
	Name     string   `json:"name" validate:"required,min=3,max=255"`
	Password string   `json:"password" validate:"omitempty,min=8,max=72"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,oneof=admin user"`
}

// UserForm requires a password on create. On update an empty password
// keeps the current one.
type UserForm struct {
	API UserAPI
}

func (f *UserForm) Fields() []entity.Field {
	return []entity.Field{
		{Name: "name", Label: "Name", Kind: entity.FieldText, Required: true},
		{Name: "password", Label: "Password", Kind: entity.FieldPassword},
		{Name: "roles", Label: "Roles", Kind: entity.FieldChoice, Required: true, Choices: []string{
			models.RoleUser,
			models.RoleAdmin + "," + models.RoleUser,
			models.RoleAdmin,
		}},
	}
}

func (f *UserForm) Load(current *models.User) entity.Values {
	if current == nil {
		return entity.Values{"name": "", "password": "", "roles": models.RoleUser}
	}
	return entity.Values{"name": current.Name, "password": "", "roles": strings.Join(current.Roles, ",")}
}

func (f *UserForm) Submit(ctx context.Context, _ primitive.ObjectID, values entity.Values, current *models.User) (models.User, error) {
	errs := &entity.ValidationError{}

	input := userInput{
		Name:     values.Get("name"),
		Password: values["password"],
		Roles:    splitList(values.Get("roles")),
	}
	if current == nil && input.Password == "" {
		errs.Add("password", "password is a required field")
	}
	if err := entity.Validate(input, errs); err != nil {
		return models.User{}, err
	}

	body := &client.UserInput{Name: input.Name, Password: input.Password, Roles: input.Roles}

	var saved *models.User
	var err error
	if current == nil {
		saved, err = f.API.CreateUser(ctx, body)
	} else {
		id := current.Id
		body.Id = &id
		saved, err = f.API.UpdateUser(ctx, body)
	}
	if err != nil {
		return models.User{}, err
	}
	return *saved, nil
}
