package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MaintenanceDetails struct {
	TimeStart string `bson:"timeStart,omitempty" json:"timeStart,omitempty"`
	TimeEnd   string `bson:"timeEnd,omitempty" json:"timeEnd,omitempty"`
	Status    bool   `bson:"status" json:"status"`
	Summary   string `bson:"summary,omitempty" json:"summary,omitempty"`
}

type MaintenanceEvent struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title            string               `bson:"title" json:"title"`
	Date             time.Time            `bson:"date" json:"date"`
	Tasks            []string             `bson:"tasks" json:"tasks"`
	ACID             primitive.ObjectID   `bson:"acID" json:"acID"`
	AssignedEmployee []primitive.ObjectID `bson:"assignedEmployee" json:"assignedEmployee"`
	Details          MaintenanceDetails   `bson:"details" json:"details"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}
