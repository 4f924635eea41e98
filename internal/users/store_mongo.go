// Copyright (c) 2026 WTWR. All rights reserved.

package users

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wtwr-app/wtwr/internal/platform/constants"
	"github.com/wtwr-app/wtwr/internal/platform/dberr"
)

// mongoRepository implements [Repository] on a MongoDB collection.
type mongoRepository struct {
	collection *mongo.Collection
}

// NewRepository constructs the MongoDB-backed user repository.
func NewRepository(database *mongo.Database) Repository {
	return &mongoRepository{
		collection: database.Collection(constants.CollectionUsers),
	}
}

// EnsureIndexes creates the unique email index.
//
// Email uniqueness is enforced here, at the storage layer, not by the
// application. Called once at startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(constants.CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (repository *mongoRepository) FindByID(context context.Context, id bson.ObjectID) (*User, error) {
	var user User
	err := repository.collection.FindOne(context, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return &user, nil
}

func (repository *mongoRepository) FindByEmail(context context.Context, email string) (*User, error) {
	var user User
	err := repository.collection.FindOne(context, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return &user, nil
}

func (repository *mongoRepository) Create(context context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	user.CreatedAt = time.Now().UTC()

	if _, err := repository.collection.InsertOne(context, user); err != nil {
		return dberr.Wrap(err, "User")
	}
	return nil
}

func (repository *mongoRepository) UpdateProfile(context context.Context, id bson.ObjectID, name, avatar string) (*User, error) {
	var updated User
	err := repository.collection.FindOneAndUpdate(
		context,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "avatar": avatar}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return &updated, nil
}
