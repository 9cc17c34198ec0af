package repository

import (
	"context"

	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrConflict
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *UserRepositoryImpl) GetUsers(ctx context.Context) (data []domain.User, err error) {
	cursor, err := r.db.Collection("users").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	return data, nil
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id string) (data domain.User, err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		return data, errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: userID}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}

		return data, err
	}

	return data, nil
}

func (r *UserRepositoryImpl) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.User, err error) {
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}

	cursor, err := r.db.Collection("users").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersByIDs").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersByIDs").Msg("")
		return
	}

	return data, nil
}

func (r *UserRepositoryImpl) GetUserByEmailOrUsername(ctx context.Context, login string) (data domain.User, err error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "email", Value: login}},
		bson.D{{Key: "username", Value: login}},
	}}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmailOrUsername").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}

		return data, err
	}

	return data, nil
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, id primitive.ObjectID, update bson.D) (data domain.User, err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection("users").FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: update}}, opts).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return data, errs.ErrConflict
		}

		return data, err
	}

	return data, nil
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id string) (err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteUser").Msg("")
		return errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: userID}}

	result, err := r.db.Collection("users").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteUser").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
