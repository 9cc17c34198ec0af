package repository

import (
	"context"
	"time"

	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MaintenanceRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMaintenanceRepository(db *mongo.Database) MaintenanceRepository {
	return &MaintenanceRepositoryImpl{db: db}
}

func (r *MaintenanceRepositoryImpl) AddMaintenanceEvent(ctx context.Context, data domain.MaintenanceEvent) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("maintenances").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddMaintenanceEvent").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MaintenanceRepositoryImpl) GetMaintenanceEvents(ctx context.Context) (data []domain.MaintenanceEvent, err error) {
	return r.findEvents(ctx, bson.D{})
}

func (r *MaintenanceRepositoryImpl) GetMaintenanceEventByID(ctx context.Context, id string) (data domain.MaintenanceEvent, err error) {
	eventID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetMaintenanceEventByID").Msg("")
		return data, errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: eventID}}

	err = r.db.Collection("maintenances").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetMaintenanceEventByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}

		return data, err
	}

	return data, nil
}

func (r *MaintenanceRepositoryImpl) UpdateMaintenanceEvent(ctx context.Context, id primitive.ObjectID, update bson.D) (data domain.MaintenanceEvent, err error) {
	update = append(update, bson.E{Key: "updatedAt", Value: time.Now().UTC()})

	filter := bson.D{{Key: "_id", Value: id}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection("maintenances").FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: update}}, opts).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateMaintenanceEvent").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}

		return data, err
	}

	return data, nil
}

func (r *MaintenanceRepositoryImpl) DeleteMaintenanceEvent(ctx context.Context, id string) (err error) {
	eventID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteMaintenanceEvent").Msg("")
		return errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: eventID}}

	result, err := r.db.Collection("maintenances").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteMaintenanceEvent").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

func (r *MaintenanceRepositoryImpl) GetMaintenanceEventsByAC(ctx context.Context, acID primitive.ObjectID) (data []domain.MaintenanceEvent, err error) {
	return r.findEvents(ctx, bson.D{{Key: "acID", Value: acID}})
}

func (r *MaintenanceRepositoryImpl) GetMaintenanceEventsByEmployee(ctx context.Context, employeeID primitive.ObjectID) (data []domain.MaintenanceEvent, err error) {
	return r.findEvents(ctx, bson.D{{Key: "assignedEmployee", Value: employeeID}})
}

func (r *MaintenanceRepositoryImpl) findEvents(ctx context.Context, filter bson.D) (data []domain.MaintenanceEvent, err error) {
	cursor, err := r.db.Collection("maintenances").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "findEvents").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "findEvents").Msg("")
		return
	}

	return data, nil
}
