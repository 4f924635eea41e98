// Copyright (c) 2026 WTWR. All rights reserved.

package users

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account.
//
// # Serialization
//
// PasswordHash is persisted under the `password` key but is never included
// in API responses (`json:"-"`). Once a record is persisted the hash is
// never empty.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string        `bson:"email"         json:"email"`
	PasswordHash string        `bson:"password"      json:"-"`
	Name         string        `bson:"name"          json:"name"`
	Avatar       string        `bson:"avatar"        json:"avatar"`
	CreatedAt    time.Time     `bson:"createdAt"     json:"-"`
}
