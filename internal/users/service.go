// Copyright (c) 2026 WTWR. All rights reserved.

/*
Package users implements the identity side of the WTWR API.

It handles user registration with secure password hashing, credential
verification with stateless JWT issuance, and profile reads/updates.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Profile).
  - Repository: Abstracted interface over the MongoDB users collection.
  - Security: Leverages bcrypt hashing and HS256-signed JWTs via [sec].
*/
package users

import (
	"context"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wtwr-app/wtwr/internal/platform/apperr"
	"github.com/wtwr-app/wtwr/internal/platform/sec"
)

// # Contracts & Types

// TokenIssuer defines the contract for generating access tokens.
type TokenIssuer interface {
	// Issue creates a signed JWT string whose subject is the given user ID.
	Issue(userID string) (string, error)
}

// Service implements user authentication and profile use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository Repository
	tokenIssuer    TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo Repository, tokenIssuer TokenIssuer) *Service {
	return &Service{
		userRepository: userRepo,
		tokenIssuer:    tokenIssuer,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Avatar   string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Checks email uniqueness before creating the record, so a
duplicate email always reports Conflict rather than a generic validation
failure. The storage layer's unique index covers the insert race.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity (password hash never serialized)
  - error: Conflict (if email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict error.
	// Only a NotFound lookup means the address is free; storage faults surface as-is.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if ae := apperr.As(err); ae == nil || ae.HTTPStatus != http.StatusNotFound {
		return nil, err
	}

	// Prevent storing plain-text passwords. The hash embeds a per-call salt.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("users_service_hash_failed: %w", err)
	}

	user := &User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Avatar:       input.Avatar,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates user credentials and issues an access token.

Description: Verifies identity, performs constant-time password comparison,
and returns a stateless 7-day JWT.

Unknown email and wrong password produce the identical Unauthorized error,
so responses leak nothing about which part was wrong (user enumeration
resistance).

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - string: Signed access token
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (string, error) {

	// An unknown email gets the generic message to prevent enumeration.
	// Any other lookup failure (a storage outage, for example) passes through
	// so the classifier reports and logs it as a server error.
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		if ae := apperr.As(err); ae == nil || ae.HTTPStatus != http.StatusNotFound {
			return "", err
		}
		return "", apperr.Unauthorized("Incorrect email or password")
	}

	// Verify the password hash using bcrypt's constant-time comparison.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return "", apperr.Unauthorized("Incorrect email or password")
	}

	token, err := service.tokenIssuer.Issue(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("users_service_token_issue_failed: %w", err)
	}

	return token, nil
}

// # Profile Flow

/*
GetByID returns the user identified by the hex document ID.

Description: Used by /users/me with the ID taken from the verified token.
A token for a since-deleted user resolves to NotFound, never a crash.

Parameters:
  - context: context.Context
  - idHex: string (24-character hex)

Returns:
  - *User: Hydrated entity
  - error: BadRequest on malformed ID, NotFound, or storage errors
*/
func (service *Service) GetByID(context context.Context, idHex string) (*User, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.BadRequest("Invalid user ID")
	}

	return service.userRepository.FindByID(context, id)
}

// UpdateProfileInput holds the mutable profile fields.
type UpdateProfileInput struct {
	Name   string
	Avatar string
}

/*
UpdateProfile replaces the name and avatar of the given user.

Parameters:
  - context: context.Context
  - idHex: string (24-character hex)
  - input: UpdateProfileInput

Returns:
  - *User: Updated entity
  - error: BadRequest on malformed ID, NotFound, or storage errors
*/
func (service *Service) UpdateProfile(context context.Context, idHex string, input UpdateProfileInput) (*User, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.BadRequest("Invalid user ID")
	}

	return service.userRepository.UpdateProfile(context, id, input.Name, input.Avatar)
}
