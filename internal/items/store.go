// Copyright (c) 2026 WTWR. All rights reserved.

package items

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the data access contract for clothing items.
//
// Implementations return errors already classified through the [dberr]
// taxonomy; callers never see raw driver errors.
type Repository interface {

	/*
		List returns every clothing item, newest first.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Item: Hydrated entities
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Item, error)

	/*
		FindByID returns the item with the given document ID.

		Parameters:
		  - context: context.Context
		  - id: bson.ObjectID

		Returns:
		  - *Item: Hydrated entity
		  - error: NotFound or storage failures
	*/
	FindByID(context context.Context, id bson.ObjectID) (*Item, error)

	/*
		Create persists a brand-new clothing item.

		Parameters:
		  - context: context.Context
		  - item: *Item

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, item *Item) error

	/*
		Delete removes the item with the given document ID.

		Parameters:
		  - context: context.Context
		  - id: bson.ObjectID

		Returns:
		  - error: NotFound or storage failures
	*/
	Delete(context context.Context, id bson.ObjectID) error

	/*
		AddLike records userID in the item's like set ($addToSet) and
		returns the updated document. Liking twice is a no-op.

		Parameters:
		  - context: context.Context
		  - itemID: bson.ObjectID
		  - userID: bson.ObjectID

		Returns:
		  - *Item: Updated entity
		  - error: NotFound or storage failures
	*/
	AddLike(context context.Context, itemID, userID bson.ObjectID) (*Item, error)

	/*
		RemoveLike removes userID from the item's like set ($pull) and
		returns the updated document. Unliking an unliked item is a no-op.

		Parameters:
		  - context: context.Context
		  - itemID: bson.ObjectID
		  - userID: bson.ObjectID

		Returns:
		  - *Item: Updated entity
		  - error: NotFound or storage failures
	*/
	RemoveLike(context context.Context, itemID, userID bson.ObjectID) (*Item, error)
}
