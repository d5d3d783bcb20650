package resources

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type WorkspaceFunctions struct {
	API WorkspaceAPI
}

func (f *WorkspaceFunctions) List(ctx context.Context, q entity.Query) (*models.PagedResponse[models.Workspace], error) {
	return f.API.Workspaces(ctx, toQuery(q))
}

func (f *WorkspaceFunctions) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.API.DeleteWorkspace(ctx, id)
}

func (f *WorkspaceFunctions) ToID(workspace models.Workspace) primitive.ObjectID {
	return workspace.Id
}

func (f *WorkspaceFunctions) Format(workspace models.Workspace) string {
	return workspace.Name
}

func WorkspaceColumns() []entity.Column[models.Workspace] {
	return []entity.Column[models.Workspace]{
		{Title: "Name", Width: 40, Sort: "name", Render: func(w models.Workspace) entity.Cell { return text(w.Name) }},
	}
}

type workspaceInput struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type WorkspaceForm struct {
	API WorkspaceAPI
}

func (f *WorkspaceForm) Fields() []entity.Field {
	return []entity.Field{{Name: "name", Label: "Name", Kind: entity.FieldText, Required: true}}
}

func (f *WorkspaceForm) Load(current *models.Workspace) entity.Values {
	if current == nil {
		return entity.Values{"name": ""}
	}
	return entity.Values{"name": current.Name}
}

// Submit ignores workspaceId, workspaces are not scoped.
func (f *WorkspaceForm) Submit(ctx context.Context, _ primitive.ObjectID, values entity.Values, current *models.Workspace) (models.Workspace, error) {
	input := workspaceInput{Name: values.Get("name")}
	if err := entity.Validate(input, nil); err != nil {
		return models.Workspace{}, err
	}

	workspace := &models.Workspace{Name: input.Name}

	var saved *models.Workspace
	var err error
	if current == nil {
		saved, err = f.API.CreateWorkspace(ctx, workspace)
	} else {
		workspace.Id = current.Id
		saved, err = f.API.UpdateWorkspace(ctx, workspace)
	}
	if err != nil {
		return models.Workspace{}, err
	}
	return *saved, nil
}
