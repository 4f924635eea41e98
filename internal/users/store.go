// Copyright (c) 2026 WTWR. All rights reserved.

package users

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the data access contract for user accounts.
//
// Implementations return errors already classified through the [dberr]
// taxonomy; callers never see raw driver errors.
type Repository interface {

	/*
		FindByID returns the account with the given document ID.

		Parameters:
		  - context: context.Context
		  - id: bson.ObjectID

		Returns:
		  - *User: Hydrated entity
		  - error: NotFound or storage failures
	*/
	FindByID(context context.Context, id bson.ObjectID) (*User, error)

	/*
		FindByEmail returns the account with the given email, including
		the password hash for credential verification.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: NotFound or storage failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		The unique index on email makes a duplicate insert fail with a
		Conflict error even when two signups race past the service-level
		uniqueness check.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Conflict on duplicate email, or storage failures
	*/
	Create(context context.Context, user *User) error

	/*
		UpdateProfile replaces the mutable profile fields (name, avatar)
		and returns the updated document.

		Parameters:
		  - context: context.Context
		  - id: bson.ObjectID
		  - name: string
		  - avatar: string

		Returns:
		  - *User: Updated entity
		  - error: NotFound or storage failures
	*/
	UpdateProfile(context context.Context, id bson.ObjectID, name, avatar string) (*User, error)
}
