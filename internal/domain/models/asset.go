package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AssetCollection = "asset"

// Asset is a currency or tradable instrument, e.g. EUR or a stock.
type Asset struct {
	Id          primitive.ObjectID  `bson:"_id" json:"id"`
	WorkspaceId primitive.ObjectID  `bson:"workspace_id" json:"workspaceId"`
	Name        string              `bson:"name" json:"name"`
	Code        string              `bson:"code" json:"code"`
	Symbol      string              `bson:"symbol" json:"symbol"`
	Notes       string              `bson:"notes" json:"notes"`
	ProviderId  *primitive.ObjectID `bson:"provider_id" json:"providerId"`
	Provider    *Partner            `bson:"provider,omitempty" json:"provider,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updatedAt"`
}

var AssetSortFields = SortFields{"id": "_id", "name": "name", "code": "code", "symbol": "symbol"}
