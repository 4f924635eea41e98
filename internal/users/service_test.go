// Copyright (c) 2026 WTWR. All rights reserved.

package users_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wtwr-app/wtwr/internal/platform/apperr"
	"github.com/wtwr-app/wtwr/internal/platform/sec"
	"github.com/wtwr-app/wtwr/internal/users"
)

// # Test Doubles

// fakeUserRepo is an in-memory [users.Repository] mirroring the Mongo
// store's error classification.
type fakeUserRepo struct {
	byID map[bson.ObjectID]*users.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[bson.ObjectID]*users.User)}
}

func (repo *fakeUserRepo) FindByID(_ context.Context, id bson.ObjectID) (*users.User, error) {
	user, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (repo *fakeUserRepo) FindByEmail(_ context.Context, email string) (*users.User, error) {
	for _, user := range repo.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *fakeUserRepo) Create(_ context.Context, user *users.User) error {
	for _, existing := range repo.byID {
		if existing.Email == user.Email {
			return apperr.Conflict("User already exists")
		}
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	copied := *user
	repo.byID[user.ID] = &copied
	return nil
}

func (repo *fakeUserRepo) UpdateProfile(_ context.Context, id bson.ObjectID, name, avatar string) (*users.User, error) {
	user, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	user.Name = name
	user.Avatar = avatar
	copied := *user
	return &copied, nil
}

// outageUserRepo simulates a storage outage: every lookup fails with the
// server-side classification the Mongo store would produce.
type outageUserRepo struct {
	fakeUserRepo
	err error
}

func (repo *outageUserRepo) FindByEmail(context.Context, string) (*users.User, error) {
	return nil, repo.err
}

// staticIssuer returns a fixed token without real signing.
type staticIssuer struct{ token string }

func (issuer *staticIssuer) Issue(userID string) (string, error) {
	return issuer.token, nil
}

func newTestService(repo users.Repository) *users.Service {
	return users.NewService(repo, &staticIssuer{token: "issued-token"})
}

var validInput = users.RegisterInput{
	Name:     "Al",
	Avatar:   "https://x.com/a.png",
	Email:    "a@b.com",
	Password: "secret123",
}

// # Registration

/*
TestRegister_HashesPassword verifies that the stored record carries a bcrypt
hash, never the plaintext.
*/
func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestService(repo)

	user, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, validInput.Password, user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash(validInput.Password, user.PasswordHash))
}

/*
TestRegister_DuplicateEmail pins the precedence rule: a second signup with
the same email is a 409 Conflict, not a validation failure, regardless of
whether the pre-check or the storage index catches it.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestService(repo)

	_, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	// Same email, different everything else
	duplicate := validInput
	duplicate.Name = "Someone Else"
	duplicate.Password = "another-password"

	_, err = service.Register(context.Background(), duplicate)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
}

// # Authentication

/*
TestLogin_Success verifies the issued token is returned for correct
credentials.
*/
func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestService(repo)

	_, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	token, err := service.Login(context.Background(), users.LoginInput{
		Email:    validInput.Email,
		Password: validInput.Password,
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

/*
TestLogin_EnumerationResistance verifies that an unknown email and a wrong
password yield the identical Unauthorized response: same status, same
message. Responses must not reveal which part of the credential was wrong.
*/
func TestLogin_EnumerationResistance(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestService(repo)

	_, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	_, unknownEmailErr := service.Login(context.Background(), users.LoginInput{
		Email:    "nobody@b.com",
		Password: validInput.Password,
	})
	_, wrongPasswordErr := service.Login(context.Background(), users.LoginInput{
		Email:    validInput.Email,
		Password: "wrong-password",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)

	first := apperr.As(unknownEmailErr)
	second := apperr.As(wrongPasswordErr)
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.Equal(t, http.StatusUnauthorized, first.HTTPStatus)
	assert.Equal(t, first.HTTPStatus, second.HTTPStatus)
	assert.Equal(t, first.Message, second.Message)
}

/*
TestLogin_StorageOutage verifies that an infrastructure failure during the
email lookup surfaces as a server error, not as a wrong-credentials 401. The
generic Unauthorized message is reserved for the two authentication causes;
anything else must reach the classifier with its original status so it gets
logged.
*/
func TestLogin_StorageOutage(t *testing.T) {
	repo := &outageUserRepo{err: apperr.Internal(errors.New("connection reset by peer"))}
	service := newTestService(repo)

	_, err := service.Login(context.Background(), users.LoginInput{
		Email:    validInput.Email,
		Password: validInput.Password,
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.NotEqual(t, "Incorrect email or password", ae.Message)
}

/*
TestRegister_StorageOutage verifies the uniqueness pre-check has the same
property: a failing lookup is not mistaken for a free email address.
*/
func TestRegister_StorageOutage(t *testing.T) {
	repo := &outageUserRepo{err: apperr.Internal(errors.New("connection reset by peer"))}
	service := newTestService(repo)

	_, err := service.Register(context.Background(), validInput)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
}

// # Profile

/*
TestGetByID_DeletedUser verifies that a structurally valid ID referencing a
missing user maps to NotFound (the deleted-user-with-live-token scenario).
*/
func TestGetByID_DeletedUser(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestService(repo)

	_, err := service.GetByID(context.Background(), bson.NewObjectID().Hex())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

/*
TestGetByID_MalformedID verifies that a malformed identifier is a 400, never
a storage round-trip.
*/
func TestGetByID_MalformedID(t *testing.T) {
	service := newTestService(newFakeUserRepo())

	_, err := service.GetByID(context.Background(), "not-a-hex-id")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
}

/*
TestUpdateProfile verifies name and avatar replacement.
*/
func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestService(repo)

	created, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	updated, err := service.UpdateProfile(context.Background(), created.ID.Hex(), users.UpdateProfileInput{
		Name:   "Alfred",
		Avatar: "https://x.com/b.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alfred", updated.Name)
	assert.Equal(t, "https://x.com/b.png", updated.Avatar)
	assert.Equal(t, created.ID, updated.ID)
}
