package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin represents a console operator account.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"` // always "admin" for console accounts
}
