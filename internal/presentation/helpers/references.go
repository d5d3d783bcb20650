package helpers

import (
	"context"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

// Ref is an id sent by the client that must exist in the workspace.
type Ref struct {
	Field      string
	Collection string
	Id         *primitive.ObjectID
}

// CheckReferences answers 422 for the first reference pointing nowhere.
// Nil ids are skipped.
func CheckReferences(ctx context.Context, repo usecase.ReferenceExistsRepository, workspaceId primitive.ObjectID, refs ...Ref) *presentationProtocols.HttpResponse {
	for _, ref := range refs {
		if ref.Id == nil {
			continue
		}

		exists, err := repo.Exists(ctx, ref.Collection, *ref.Id, workspaceId)
		if err != nil {
			return InternalErrorResponse("an error occurred when checking references", err)
		}
		if !exists {
			return CreateErrorResponse(http.StatusUnprocessableEntity, KeyValidation,
				fmt.Sprintf("%s does not exist in this workspace", ref.Field))
		}
	}

	return nil
}
