package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Workspace struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Collections holding documents bound to a workspace through workspace_id.
var WorkspaceScopedCollections = []string{
	AssetCollection,
	PartnerCollection,
	WalletCollection,
	TransactionCollection,
	RecurringPaymentCollection,
}

const WorkspaceCollection = "workspace"

var WorkspaceSortFields = SortFields{"id": "_id", "name": "name"}
