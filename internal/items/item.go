// Copyright (c) 2026 WTWR. All rights reserved.

package items

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Weather classifications an item can be tagged with.
const (
	WeatherHot  = "hot"
	WeatherWarm = "warm"
	WeatherCold = "cold"
)

// Item represents a single clothing item in a user's wardrobe.
type Item struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name    string        `bson:"name"          json:"name"`
	Weather string        `bson:"weather"       json:"weather"`
	// ImageURL keeps the original API's `imageUrl` JSON key.
	ImageURL string        `bson:"imageUrl" json:"imageUrl"`
	Owner    bson.ObjectID `bson:"owner"    json:"owner"`
	// Likes holds the IDs of users who liked the item; a user appears at
	// most once ($addToSet semantics).
	Likes     []bson.ObjectID `bson:"likes"     json:"likes"`
	CreatedAt time.Time       `bson:"createdAt" json:"createdAt"`
}
