package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const TransactionCollection = "transaction"

type TransactionStatus string

const (
	TransactionStatusOpen      TransactionStatus = "OPEN"
	TransactionStatusClosed    TransactionStatus = "CLOSED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

type TransactionType string

const (
	TransactionTypePayment TransactionType = "PAYMENT"
	TransactionTypeBalance TransactionType = "BALANCE"
)

type Transaction struct {
	Id            primitive.ObjectID  `bson:"_id" json:"id"`
	WorkspaceId   primitive.ObjectID  `bson:"workspace_id" json:"workspaceId"`
	Name          string              `bson:"name" json:"name"`
	Amount        decimal.Decimal     `bson:"amount" json:"amount"`
	Date          time.Time           `bson:"date" json:"date"`
	Status        TransactionStatus   `bson:"status" json:"status"`
	Type          TransactionType     `bson:"type" json:"type"`
	AssetId       primitive.ObjectID  `bson:"asset_id" json:"assetId"`
	WalletId      primitive.ObjectID  `bson:"wallet_id" json:"walletId"`
	PartnerId     *primitive.ObjectID `bson:"partner_id" json:"partnerId"`
	InternalRefId *primitive.ObjectID `bson:"internal_ref_id" json:"internalRefId"`
	Notes         string              `bson:"notes" json:"notes"`
	UserModified  bool                `bson:"user_modified" json:"userModified"`
	SourceId      *primitive.ObjectID `bson:"source_id" json:"sourceId,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updatedAt"`

	// Read-only values filled by the list aggregation.
	Booked  decimal.Decimal `bson:"booked,omitempty" json:"booked"`
	Asset   *Asset          `bson:"asset,omitempty" json:"asset,omitempty"`
	Wallet  *Wallet         `bson:"wallet,omitempty" json:"wallet,omitempty"`
	Partner *Partner        `bson:"partner,omitempty" json:"partner,omitempty"`
}

// IsGenerated reports whether the transaction was produced by a recurring payment.
func (t *Transaction) IsGenerated() bool {
	return t.SourceId != nil
}

// SameValues compares the user editable fields of two transactions.
func (t *Transaction) SameValues(other *Transaction) bool {
	return t.Name == other.Name &&
		t.Amount.Equal(other.Amount) &&
		t.Date.Equal(other.Date) &&
		t.Status == other.Status &&
		t.Type == other.Type &&
		t.AssetId == other.AssetId &&
		t.WalletId == other.WalletId &&
		sameObjectId(t.PartnerId, other.PartnerId) &&
		sameObjectId(t.InternalRefId, other.InternalRefId) &&
		t.Notes == other.Notes
}

func sameObjectId(a, b *primitive.ObjectID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

var TransactionSortFields = SortFields{
	"id":     "_id",
	"name":   "name",
	"amount": "amount",
	"date":   "date",
	"status": "status",
	"type":   "type",
}
