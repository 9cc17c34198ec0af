package repository

import (
	"time"

	"context"

	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ACRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewACRepository(db *mongo.Database) ACRepository {
	return &ACRepositoryImpl{db: db}
}

func (r *ACRepositoryImpl) AddAC(ctx context.Context, data domain.AC) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("acs").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddAC").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrUnitIDAlreadyUsed
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *ACRepositoryImpl) GetACs(ctx context.Context) (data []domain.AC, err error) {
	cursor, err := r.db.Collection("acs").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetACs").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetACs").Msg("")
		return
	}

	return data, nil
}

func (r *ACRepositoryImpl) GetACByID(ctx context.Context, id string) (data domain.AC, err error) {
	acID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetACByID").Msg("")
		return data, errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: acID}}

	err = r.db.Collection("acs").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetACByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}

		return data, err
	}

	return data, nil
}

func (r *ACRepositoryImpl) UpdateAC(ctx context.Context, id primitive.ObjectID, update bson.D) (data domain.AC, err error) {
	update = append(update, bson.E{Key: "updatedAt", Value: time.Now().UTC()})

	filter := bson.D{{Key: "_id", Value: id}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection("acs").FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: update}}, opts).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateAC").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return data, errs.ErrUnitIDAlreadyUsed
		}

		return data, err
	}

	return data, nil
}

func (r *ACRepositoryImpl) DeleteAC(ctx context.Context, id string) (err error) {
	acID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteAC").Msg("")
		return errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: acID}}

	result, err := r.db.Collection("acs").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteAC").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

// AppendMaintenanceHistory pushes a single history entry in one update so
// concurrent appends to the same unit cannot overwrite each other.
func (r *ACRepositoryImpl) AppendMaintenanceHistory(ctx context.Context, key domain.ACKey, entry domain.MaintenanceHistoryEntry) (data domain.AC, err error) {
	var filter bson.D

	switch key.Kind {
	case domain.ACKeyInternal:
		acID, err := primitive.ObjectIDFromHex(key.Value)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "AppendMaintenanceHistory").Msg("")
			return data, errs.ErrClient
		}
		filter = bson.D{{Key: "_id", Value: acID}}
	case domain.ACKeyExternal:
		filter = bson.D{{Key: "id", Value: key.Value}}
	default:
		return data, errs.ErrClient
	}

	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "maintenanceHistory", Value: entry}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection("acs").FindOneAndUpdate(ctx, filter, update, opts).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AppendMaintenanceHistory").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}

		return data, err
	}

	return data, nil
}
