package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MaintenanceHistoryEntry struct {
	Date              time.Time            `bson:"date" json:"date"`
	Description       string               `bson:"description" json:"description"`
	Employee          string               `bson:"employee" json:"employee"`
	AssignedEmployees []primitive.ObjectID `bson:"assignedEmployees" json:"assignedEmployees"`
	Status            bool                 `bson:"status" json:"status"`
	Summary           string               `bson:"summary,omitempty" json:"summary,omitempty"`
	Tasks             []string             `bson:"tasks" json:"tasks"`
}

type AC struct {
	ID                 primitive.ObjectID        `bson:"_id,omitempty" json:"_id"`
	Name               string                    `bson:"name" json:"name"`
	Location           string                    `bson:"location" json:"location"`
	Watts              int64                     `bson:"watts" json:"watts"`
	UnitID             string                    `bson:"id" json:"id"`
	MaintenanceHistory []MaintenanceHistoryEntry `bson:"maintenanceHistory" json:"maintenanceHistory"`
	CreatedAt          time.Time                 `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time                 `bson:"updatedAt" json:"updatedAt"`
}

type ACKeyKind int

const (
	ACKeyInternal ACKeyKind = iota
	ACKeyExternal
)

// ACKey is a tagged lookup key for an AC unit: either the Mongo document id
// or the unit's external identifier string.
type ACKey struct {
	Kind  ACKeyKind
	Value string
}

// ParseACKey classifies a raw path value once, so lookups dispatch on the tag
// instead of probing both id forms against the store.
func ParseACKey(raw string) ACKey {
	if _, err := primitive.ObjectIDFromHex(raw); err == nil {
		return ACKey{Kind: ACKeyInternal, Value: raw}
	}
	return ACKey{Kind: ACKeyExternal, Value: raw}
}
