// Copyright (c) 2026 WTWR. All rights reserved.

package items

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

// NewRepository constructs the MongoDB-backed item repository.
func NewRepository(database *mongo.Database) Repository {
	return &mongoRepository{
		collection: database.Collection(constants.CollectionItems),
	}
}

func (repository *mongoRepository) List(context context.Context) ([]*Item, error) {
	cursor, err := repository.collection.Find(
		context,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Item")
	}
	defer cursor.Close(context)

	items := make([]*Item, 0)
	if err := cursor.All(context, &items); err != nil {
		return nil, dberr.Wrap(err, "Item")
	}
	return items, nil
}

func (repository *mongoRepository) FindByID(context context.Context, id bson.ObjectID) (*Item, error) {
	var item Item
	err := repository.collection.FindOne(context, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, dberr.Wrap(err, "Item")
	}
	return &item, nil
}

func (repository *mongoRepository) Create(context context.Context, item *Item) error {
	if item.ID.IsZero() {
		item.ID = bson.NewObjectID()
	}
	if item.Likes == nil {
		item.Likes = []bson.ObjectID{}
	}
	item.CreatedAt = time.Now().UTC()

	if _, err := repository.collection.InsertOne(context, item); err != nil {
		return dberr.Wrap(err, "Item")
	}
	return nil
}

func (repository *mongoRepository) Delete(context context.Context, id bson.ObjectID) error {
	result, err := repository.collection.DeleteOne(context, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err, "Item")
	}
	if result.DeletedCount == 0 {
		return dberr.Wrap(mongo.ErrNoDocuments, "Item")
	}
	return nil
}

func (repository *mongoRepository) AddLike(context context.Context, itemID, userID bson.ObjectID) (*Item, error) {
	return repository.updateLikes(context, itemID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (repository *mongoRepository) RemoveLike(context context.Context, itemID, userID bson.ObjectID) (*Item, error) {
	return repository.updateLikes(context, itemID, bson.M{"$pull": bson.M{"likes": userID}})
}

// updateLikes applies a like-set mutation and returns the post-update document.
func (repository *mongoRepository) updateLikes(context context.Context, itemID bson.ObjectID, update bson.M) (*Item, error) {
	var updated Item
	err := repository.collection.FindOneAndUpdate(
		context,
		bson.M{"_id": itemID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, dberr.Wrap(err, "Item")
	}
	return &updated, nil
}
