// Copyright (c) 2026 WTWR. All rights reserved.

/*
Package items implements the clothing-item catalogue of the WTWR API.

It handles listing, creation, owner-scoped deletion, and like/unlike
attribution for wardrobe items.

Architecture:

  - Service: Orchestrates business logic and ownership rules.
  - Repository: Abstracted interface over the MongoDB items collection.
*/
package items

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wtwr-app/wtwr/internal/platform/apperr"
)

// Service implements clothing-item use cases.
type Service struct {
	itemRepository Repository
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(itemRepo Repository) *Service {
	return &Service{itemRepository: itemRepo}
}

/*
List returns all clothing items, newest first.

Parameters:
  - context: context.Context

Returns:
  - []*Item: Hydrated entities
  - error: Storage failures
*/
func (service *Service) List(context context.Context) ([]*Item, error) {
	return service.itemRepository.List(context)
}

// CreateInput holds the data required to add a new item.
type CreateInput struct {
	Name     string
	Weather  string
	ImageURL string
	OwnerID  string
}

/*
Create persists a new clothing item owned by the requesting user.

Parameters:
  - context: context.Context
  - input: CreateInput (OwnerID comes from the request identity, never the body)

Returns:
  - *Item: Created entity
  - error: BadRequest on malformed owner ID, or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Item, error) {
	ownerID, err := bson.ObjectIDFromHex(input.OwnerID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid user ID")
	}

	item := &Item{
		Name:     input.Name,
		Weather:  input.Weather,
		ImageURL: input.ImageURL,
		Owner:    ownerID,
	}

	if err := service.itemRepository.Create(context, item); err != nil {
		return nil, err
	}

	return item, nil
}

/*
Delete removes an item after verifying ownership.

Description: The item is fetched first so that a missing item reports
NotFound and a foreign item reports Forbidden; only the owner's delete
reaches the storage layer.

Parameters:
  - context: context.Context
  - itemIDHex: string (24-character hex)
  - requesterIDHex: string (authenticated user)

Returns:
  - *Item: The deleted entity
  - error: BadRequest, NotFound, Forbidden, or storage errors
*/
func (service *Service) Delete(context context.Context, itemIDHex, requesterIDHex string) (*Item, error) {
	itemID, err := bson.ObjectIDFromHex(itemIDHex)
	if err != nil {
		return nil, apperr.BadRequest("Invalid item ID")
	}

	requesterID, err := bson.ObjectIDFromHex(requesterIDHex)
	if err != nil {
		return nil, apperr.BadRequest("Invalid user ID")
	}

	item, err := service.itemRepository.FindByID(context, itemID)
	if err != nil {
		return nil, err
	}

	if item.Owner != requesterID {
		return nil, apperr.Forbidden("You can only delete your own items")
	}

	if err := service.itemRepository.Delete(context, itemID); err != nil {
		return nil, err
	}

	return item, nil
}

/*
Like records the requesting user in the item's like set.

Liking an already-liked item is idempotent ($addToSet).

Parameters:
  - context: context.Context
  - itemIDHex: string (24-character hex)
  - userIDHex: string (authenticated user)

Returns:
  - *Item: Updated entity
  - error: BadRequest, NotFound, or storage errors
*/
func (service *Service) Like(context context.Context, itemIDHex, userIDHex string) (*Item, error) {
	itemID, userID, err := parseIDPair(itemIDHex, userIDHex)
	if err != nil {
		return nil, err
	}
	return service.itemRepository.AddLike(context, itemID, userID)
}

/*
Unlike removes the requesting user from the item's like set.

Unliking a never-liked item is idempotent ($pull).

Parameters:
  - context: context.Context
  - itemIDHex: string (24-character hex)
  - userIDHex: string (authenticated user)

Returns:
  - *Item: Updated entity
  - error: BadRequest, NotFound, or storage errors
*/
func (service *Service) Unlike(context context.Context, itemIDHex, userIDHex string) (*Item, error) {
	itemID, userID, err := parseIDPair(itemIDHex, userIDHex)
	if err != nil {
		return nil, err
	}
	return service.itemRepository.RemoveLike(context, itemID, userID)
}

// parseIDPair converts the item and user hex IDs, classifying malformed input.
func parseIDPair(itemIDHex, userIDHex string) (bson.ObjectID, bson.ObjectID, error) {
	itemID, err := bson.ObjectIDFromHex(itemIDHex)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, apperr.BadRequest("Invalid item ID")
	}

	userID, err := bson.ObjectIDFromHex(userIDHex)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, apperr.BadRequest("Invalid user ID")
	}

	return itemID, userID, nil
}
