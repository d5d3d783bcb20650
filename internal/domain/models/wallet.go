package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const WalletCollection = "wallet"

type Wallet struct {
	Id          primitive.ObjectID  `bson:"_id" json:"id"`
	WorkspaceId primitive.ObjectID  `bson:"workspace_id" json:"workspaceId"`
	Name        string              `bson:"name" json:"name"`
	Notes       string              `bson:"notes" json:"notes"`
	ProviderId  *primitive.ObjectID `bson:"provider_id" json:"providerId"`
	AssetId     *primitive.ObjectID `bson:"asset_id" json:"assetId"`
	Provider    *Partner            `bson:"provider,omitempty" json:"provider,omitempty"`
	Asset       *Asset              `bson:"asset,omitempty" json:"asset,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updatedAt"`
}

var WalletSortFields = SortFields{"id": "_id", "name": "name"}
