// Copyright (c) 2026 WTWR. All rights reserved.

package items_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wtwr-app/wtwr/internal/items"
	"github.com/wtwr-app/wtwr/internal/platform/apperr"
)

// # Test Doubles

// fakeItemRepo is an in-memory [items.Repository] mirroring the Mongo
// store's error classification and $addToSet/$pull semantics.
type fakeItemRepo struct {
	byID map[bson.ObjectID]*items.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{byID: make(map[bson.ObjectID]*items.Item)}
}

func (repo *fakeItemRepo) List(_ context.Context) ([]*items.Item, error) {
	listed := make([]*items.Item, 0, len(repo.byID))
	for _, item := range repo.byID {
		copied := *item
		listed = append(listed, &copied)
	}
	return listed, nil
}

func (repo *fakeItemRepo) FindByID(_ context.Context, id bson.ObjectID) (*items.Item, error) {
	item, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("Item")
	}
	copied := *item
	return &copied, nil
}

func (repo *fakeItemRepo) Create(_ context.Context, item *items.Item) error {
	if item.ID.IsZero() {
		item.ID = bson.NewObjectID()
	}
	if item.Likes == nil {
		item.Likes = []bson.ObjectID{}
	}
	copied := *item
	repo.byID[item.ID] = &copied
	return nil
}

func (repo *fakeItemRepo) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := repo.byID[id]; !ok {
		return apperr.NotFound("Item")
	}
	delete(repo.byID, id)
	return nil
}

func (repo *fakeItemRepo) AddLike(_ context.Context, itemID, userID bson.ObjectID) (*items.Item, error) {
	item, ok := repo.byID[itemID]
	if !ok {
		return nil, apperr.NotFound("Item")
	}
	// $addToSet: append only when absent
	found := false
	for _, liker := range item.Likes {
		if liker == userID {
			found = true
			break
		}
	}
	if !found {
		item.Likes = append(item.Likes, userID)
	}
	copied := *item
	return &copied, nil
}

func (repo *fakeItemRepo) RemoveLike(_ context.Context, itemID, userID bson.ObjectID) (*items.Item, error) {
	item, ok := repo.byID[itemID]
	if !ok {
		return nil, apperr.NotFound("Item")
	}
	// $pull: filter out every occurrence
	kept := item.Likes[:0]
	for _, liker := range item.Likes {
		if liker != userID {
			kept = append(kept, liker)
		}
	}
	item.Likes = kept
	copied := *item
	return &copied, nil
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	ae := apperr.As(err)
	require.NotNil(t, ae)
	return ae.HTTPStatus
}

// # Creation

/*
TestCreate_AttributesOwner verifies that the owner comes from the request
identity, never from a payload field.
*/
func TestCreate_AttributesOwner(t *testing.T) {
	repo := newFakeItemRepo()
	service := items.NewService(repo)
	ownerID := bson.NewObjectID()

	item, err := service.Create(context.Background(), items.CreateInput{
		Name:     "Rain jacket",
		Weather:  items.WeatherCold,
		ImageURL: "https://x.com/jacket.png",
		OwnerID:  ownerID.Hex(),
	})
	require.NoError(t, err)

	assert.Equal(t, ownerID, item.Owner)
	assert.Empty(t, item.Likes)
	assert.False(t, item.ID.IsZero())
}

/*
TestCreate_MalformedOwner verifies that a bad identity hex is a 400.
*/
func TestCreate_MalformedOwner(t *testing.T) {
	service := items.NewService(newFakeItemRepo())

	_, err := service.Create(context.Background(), items.CreateInput{
		Name:     "Rain jacket",
		Weather:  items.WeatherCold,
		ImageURL: "https://x.com/jacket.png",
		OwnerID:  "not-hex",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

// # Deletion

/*
TestDelete_OwnerOnly verifies the ownership rule: the owner can delete,
everyone else gets 403, and the item survives a forbidden attempt.
*/
func TestDelete_OwnerOnly(t *testing.T) {
	repo := newFakeItemRepo()
	service := items.NewService(repo)
	owner := bson.NewObjectID()
	stranger := bson.NewObjectID()

	item, err := service.Create(context.Background(), items.CreateInput{
		Name:     "Scarf",
		Weather:  items.WeatherCold,
		ImageURL: "https://x.com/scarf.png",
		OwnerID:  owner.Hex(),
	})
	require.NoError(t, err)

	// 1. A stranger is rejected
	_, err = service.Delete(context.Background(), item.ID.Hex(), stranger.Hex())
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	// The item is still there
	_, err = repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)

	// 2. The owner succeeds and receives the deleted entity back
	deleted, err := service.Delete(context.Background(), item.ID.Hex(), owner.Hex())
	require.NoError(t, err)
	assert.Equal(t, item.ID, deleted.ID)

	_, err = repo.FindByID(context.Background(), item.ID)
	require.Error(t, err)
}

/*
TestDelete_Missing verifies 404 for an unknown item and 400 for a malformed
item ID.
*/
func TestDelete_Missing(t *testing.T) {
	service := items.NewService(newFakeItemRepo())
	requester := bson.NewObjectID().Hex()

	_, err := service.Delete(context.Background(), bson.NewObjectID().Hex(), requester)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = service.Delete(context.Background(), "zz", requester)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

// # Likes

/*
TestLike_Idempotent verifies the $addToSet semantics: liking twice records
the user once; unliking removes it; unliking again is a no-op.
*/
func TestLike_Idempotent(t *testing.T) {
	repo := newFakeItemRepo()
	service := items.NewService(repo)
	owner := bson.NewObjectID()
	liker := bson.NewObjectID()

	item, err := service.Create(context.Background(), items.CreateInput{
		Name:     "Sun hat",
		Weather:  items.WeatherHot,
		ImageURL: "https://x.com/hat.png",
		OwnerID:  owner.Hex(),
	})
	require.NoError(t, err)

	// 1. First like records the user
	liked, err := service.Like(context.Background(), item.ID.Hex(), liker.Hex())
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{liker}, liked.Likes)

	// 2. Second like is a no-op
	likedAgain, err := service.Like(context.Background(), item.ID.Hex(), liker.Hex())
	require.NoError(t, err)
	assert.Len(t, likedAgain.Likes, 1)

	// 3. Unlike removes the user
	unliked, err := service.Unlike(context.Background(), item.ID.Hex(), liker.Hex())
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)

	// 4. Unlike of an unliked item is a no-op
	unlikedAgain, err := service.Unlike(context.Background(), item.ID.Hex(), liker.Hex())
	require.NoError(t, err)
	assert.Empty(t, unlikedAgain.Likes)
}

/*
TestLike_Missing verifies 404 on unknown item and 400 on malformed IDs.
*/
func TestLike_Missing(t *testing.T) {
	service := items.NewService(newFakeItemRepo())
	liker := bson.NewObjectID().Hex()

	_, err := service.Like(context.Background(), bson.NewObjectID().Hex(), liker)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = service.Like(context.Background(), "bad-id", liker)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}
