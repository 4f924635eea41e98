// Copyright (c) 2026 WTWR. All rights reserved.

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wtwr-app/wtwr/internal/platform/apperr"
	"github.com/wtwr-app/wtwr/internal/platform/dberr"
)

/*
TestWrap_Nil verifies that a nil error passes through unchanged.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "User"))
}

/*
TestWrap_NoDocuments verifies the not-found mapping.
*/
func TestWrap_NoDocuments(t *testing.T) {
	err := dberr.Wrap(mongo.ErrNoDocuments, "Item")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, "Item not found", ae.Message)
}

/*
TestWrap_DuplicateKey verifies that a unique-index violation maps to 409.
*/
func TestWrap_DuplicateKey(t *testing.T) {
	duplicate := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error collection: wtwr_db.users index: email_1"},
		},
	}

	err := dberr.Wrap(duplicate, "User")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	// The raw driver message must never reach the client
	assert.NotContains(t, ae.Message, "E11000")
}

/*
TestWrap_Unclassified verifies that unknown faults default to 500 with a
generic message while the cause is preserved for logging.
*/
func TestWrap_Unclassified(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := dberr.Wrap(cause, "User")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.NotContains(t, ae.Message, "connection reset")
	assert.ErrorIs(t, err, cause)
}

/*
TestWrap_Passthrough verifies that an already-classified error is not
re-wrapped (classification happens exactly once).
*/
func TestWrap_Passthrough(t *testing.T) {
	original := apperr.Conflict("Email is already registered")
	err := dberr.Wrap(original, "User")

	assert.Same(t, original, apperr.As(err))
}
