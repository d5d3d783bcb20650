package helpers

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

// GetPathId parses the ObjectID stored in the named path segment.
func GetPathId(r presentationProtocols.HttpRequest, name string) (primitive.ObjectID, *presentationProtocols.HttpResponse) {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue(name))
	if err != nil {
		return primitive.NilObjectID, InvalidIdResponse(name)
	}
	return id, nil
}

// DecodeBody decodes the json body into body and validates it.
func DecodeBody(r presentationProtocols.HttpRequest, body any) *presentationProtocols.HttpResponse {
	if r.Body == nil {
		return InvalidBodyResponse()
	}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		return InvalidBodyResponse()
	}
	return Validate(Validator(), body)
}

// OptionalId treats the nil ObjectID like a missing one.
func OptionalId(id *primitive.ObjectID) *primitive.ObjectID {
	if id == nil || id.IsZero() {
		return nil
	}
	value := *id
	return &value
}

type identityKey struct{}

func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns nil for anonymous requests.
func IdentityFromContext(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(identityKey{}).(*models.Identity)
	return identity
}
