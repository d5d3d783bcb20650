package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const PartnerCollection = "partner"

type PartnerType string

const (
	PartnerTypeBank         PartnerType = "BANK"
	PartnerTypeCompany      PartnerType = "COMPANY"
	PartnerTypePerson       PartnerType = "PERSON"
	PartnerTypeGovernmental PartnerType = "GOVERNMENTAL"
	PartnerTypeExchange     PartnerType = "EXCHANGE"
	PartnerTypeOther        PartnerType = "OTHER"
)

var PartnerTypes = []PartnerType{
	PartnerTypeBank,
	PartnerTypeCompany,
	PartnerTypePerson,
	PartnerTypeGovernmental,
	PartnerTypeExchange,
	PartnerTypeOther,
}

type Partner struct {
	Id          primitive.ObjectID `bson:"_id" json:"id"`
	WorkspaceId primitive.ObjectID `bson:"workspace_id" json:"workspaceId"`
	Name        string             `bson:"name" json:"name"`
	Type        PartnerType        `bson:"type" json:"type"`
	Notes       string             `bson:"notes" json:"notes"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

var PartnerSortFields = SortFields{"id": "_id", "name": "name", "type": "type"}
