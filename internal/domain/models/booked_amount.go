package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const BookedAmountCollection = "booked_amount"

const DateLayout = "2006-01-02"

// BookedAmount is the settled portion of a transaction. A transaction may be
// booked in several parts.
type BookedAmount struct {
	Id            primitive.ObjectID `bson:"_id" json:"id"`
	TransactionId primitive.ObjectID `bson:"transaction_id" json:"transactionId"`
	Amount        decimal.Decimal    `bson:"amount" json:"amount"`
	Date          time.Time          `bson:"date" json:"date"`
	AssetId       primitive.ObjectID `bson:"asset_id" json:"assetId"`
	WalletId      primitive.ObjectID `bson:"wallet_id" json:"walletId"`
	Notes         string             `bson:"notes" json:"notes"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// TruncateToDay drops the clock part, keeping dates comparable across zones.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var BookedAmountSortFields = SortFields{"id": "_id", "amount": "amount", "date": "date"}
