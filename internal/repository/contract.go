package repository

import (
	"context"

	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUsers(ctx context.Context) (data []domain.User, err error)
	GetUserByID(ctx context.Context, id string) (data domain.User, err error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.User, err error)
	GetUserByEmailOrUsername(ctx context.Context, login string) (data domain.User, err error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update bson.D) (data domain.User, err error)
	DeleteUser(ctx context.Context, id string) (err error)
}

type ACRepository interface {
	AddAC(ctx context.Context, data domain.AC) (id primitive.ObjectID, err error)
	GetACs(ctx context.Context) (data []domain.AC, err error)
	GetACByID(ctx context.Context, id string) (data domain.AC, err error)
	UpdateAC(ctx context.Context, id primitive.ObjectID, update bson.D) (data domain.AC, err error)
	DeleteAC(ctx context.Context, id string) (err error)
	AppendMaintenanceHistory(ctx context.Context, key domain.ACKey, entry domain.MaintenanceHistoryEntry) (data domain.AC, err error)
}

type MaintenanceRepository interface {
	AddMaintenanceEvent(ctx context.Context, data domain.MaintenanceEvent) (id primitive.ObjectID, err error)
	GetMaintenanceEvents(ctx context.Context) (data []domain.MaintenanceEvent, err error)
	GetMaintenanceEventByID(ctx context.Context, id string) (data domain.MaintenanceEvent, err error)
	UpdateMaintenanceEvent(ctx context.Context, id primitive.ObjectID, update bson.D) (data domain.MaintenanceEvent, err error)
	DeleteMaintenanceEvent(ctx context.Context, id string) (err error)
	GetMaintenanceEventsByAC(ctx context.Context, acID primitive.ObjectID) (data []domain.MaintenanceEvent, err error)
	GetMaintenanceEventsByEmployee(ctx context.Context, employeeID primitive.ObjectID) (data []domain.MaintenanceEvent, err error)
}
