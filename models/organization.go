package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is a club. Name is the lookup key but the store does not enforce uniqueness.
type Organization struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Admin       string             `bson:"admin" json:"admin"` // free text for now, not a user reference
}
