package transaction_repository

import (
	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
)

// Stages adding the booked sum to each transaction.
var bookedStages = []bson.D{
	{{Key: "$lookup", Value: bson.M{
		"from":         models.BookedAmountCollection,
		"localField":   "_id",
		"foreignField": "transaction_id",
		"as":           "booked_amounts",
	}}},
	{{Key: "$addFields", Value: bson.M{"booked": bson.M{"$sum": "$booked_amounts.amount"}}}},
	{{Key: "$project", Value: bson.M{"booked_amounts": 0}}},
}

func expandStages() []bson.D {
	stages := []bson.D{}
	stages = append(stages, helpers.LookupOne(models.AssetCollection, "asset_id", "asset")...)
	stages = append(stages, helpers.LookupOne(models.WalletCollection, "wallet_id", "wallet")...)
	stages = append(stages, helpers.LookupOne(models.PartnerCollection, "partner_id", "partner")...)
	return append(stages, bookedStages...)
}

func editableFields(tx *models.Transaction) bson.M {
	return bson.M{
		"name":            tx.Name,
		"amount":          tx.Amount,
		"date":            tx.Date,
		"status":          tx.Status,
		"type":            tx.Type,
		"asset_id":        tx.AssetId,
		"wallet_id":       tx.WalletId,
		"partner_id":      tx.PartnerId,
		"internal_ref_id": tx.InternalRefId,
		"notes":           tx.Notes,
		"user_modified":   tx.UserModified,
	}
}

func document(tx *models.Transaction) bson.M {
	doc := editableFields(tx)
	doc["_id"] = tx.Id
	doc["workspace_id"] = tx.WorkspaceId
	doc["source_id"] = tx.SourceId
	doc["created_at"] = tx.CreatedAt
	doc["updated_at"] = tx.UpdatedAt
	return doc
}
