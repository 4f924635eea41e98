// Copyright (c) 2026 WTWR. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Driver-specific faults (duplicate key codes, "no documents" signals) are
// translated here, exactly once, into the fixed [apperr] taxonomy. They never
// cross the store boundary in raw form, so handlers and services stay free of
// MongoDB error inspection.
package dberr

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wtwr-app/wtwr/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Mapping
//
//   - mongo.ErrNoDocuments       → 404 NotFound (resource names the entity)
//   - duplicate key (E11000)     → 409 Conflict
//   - anything else              → 500 Internal (cause kept for logging)
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// Already classified upstream; pass through untouched.
	if apperr.IsAppError(err) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(resource)
	}

	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict(resource + " already exists")
	}

	return apperr.Internal(err)
}
