package models

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserCollection = "user"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is global, it is not bound to a workspace.
type User struct {
	Id           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Roles        []string           `bson:"roles" json:"roles"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// Identity is what the session token carries about its user.
type Identity struct {
	Id    string   `json:"id,omitempty"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

func (i *Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

var UserSortFields = SortFields{"id": "_id", "name": "name"}
