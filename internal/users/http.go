// Copyright (c) 2026 WTWR. All rights reserved.

/*
HTTP delivery layer for user identity management.

It implements the gateway for the authentication lifecycle, from account
creation to profile management.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wtwr-app/wtwr/internal/platform/constants"
	"github.com/wtwr-app/wtwr/internal/platform/middleware"
	requestutil "github.com/wtwr-app/wtwr/internal/platform/request"
	"github.com/wtwr-app/wtwr/internal/platform/respond"
	"github.com/wtwr-app/wtwr/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements identity-related HTTP endpoints.
type Handler struct {
	userService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{userService: service}
}

// AuthRoutes returns a [chi.Router] with the public authentication routes.
//
// # Endpoints
//   - POST /signup : Creates a new account.
//   - POST /signin : Authenticates and returns a JWT.
func (handler *Handler) AuthRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/signin", handler.signin)

	return router
}

// Routes returns a [chi.Router] with the protected profile routes.
//
// # Endpoints
//   - GET   /me : Returns the authenticated user's profile.
//   - PATCH /me : Updates the authenticated user's name and avatar.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.currentUser)
		r.Patch("/me", handler.updateProfile)
	})

	return router
}

// # Request Payloads

type signupRequest struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

/*
signup handles the creation of a new user account.

POST /signup

Description: Validates input, checks for email conflicts, and persists
a new user profile to the database.

Request:
  - Body: signupRequest (Name, Avatar, Email, Password)

Response:
  - 201: User: Created user profile (no password field)
  - 400: Validation failure
  - 409: Email already registered
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("name", input.Name).
		MinLen("name", input.Name, constants.NameMinLen).
		MaxLen("name", input.Name, constants.NameMaxLen).
		Required("avatar", input.Avatar).
		URL("avatar", input.Avatar).
		Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.userService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Avatar:   input.Avatar,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
signin authenticates a user and returns an access token.

POST /signin

Description: Verifies credentials and returns a stateless 7-day JWT.

Request:
  - Body: signinRequest (Email, Password)

Response:
  - 200: {token}: Signed access token
  - 400: Missing email or password
  - 401: Incorrect email or password (identical for both failure causes)
*/
func (handler *Handler) signin(writer http.ResponseWriter, request *http.Request) {
	var input signinRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("email", input.Email)
	validator.Required("password", input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.userService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		constants.FieldToken: token,
	})
}

/*
currentUser returns the authenticated user's profile.

GET /users/me

Response:
  - 200: User: Profile of the token's subject
  - 401: Missing or invalid token
  - 404: Token subject no longer exists (deleted account)
*/
func (handler *Handler) currentUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.userService.GetByID(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
updateProfile updates the authenticated user's name and avatar.

PATCH /users/me

Request:
  - Body: updateProfileRequest (Name, Avatar)

Response:
  - 200: User: Updated profile
  - 400: Validation failure
  - 401: Missing or invalid token
  - 404: Token subject no longer exists
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("name", input.Name).
		MinLen("name", input.Name, constants.NameMinLen).
		MaxLen("name", input.Name, constants.NameMaxLen).
		Required("avatar", input.Avatar).
		URL("avatar", input.Avatar)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.userService.UpdateProfile(request.Context(), userID, UpdateProfileInput{
		Name:   input.Name,
		Avatar: input.Avatar,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
