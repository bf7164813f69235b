package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrgID            primitive.ObjectID `bson:"orgId" json:"orgId"`
	EventName        string             `bson:"eventName" json:"eventName"`
	EventDescription string             `bson:"eventDescription" json:"eventDescription"`
	EventDate        string             `bson:"eventDate" json:"eventDate"` // kept as supplied
}
