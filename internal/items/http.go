// Copyright (c) 2026 WTWR. All rights reserved.

package items

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wtwr-app/wtwr/internal/platform/constants"
	"github.com/wtwr-app/wtwr/internal/platform/middleware"
	requestutil "github.com/wtwr-app/wtwr/internal/platform/request"
	"github.com/wtwr-app/wtwr/internal/platform/respond"
	"github.com/wtwr-app/wtwr/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements clothing-item HTTP endpoints.
type Handler struct {
	itemService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{itemService: service}
}

// Routes returns a [chi.Router] configured with item-specific routes.
//
// # Endpoints
//   - GET    /                 : Lists all items (public).
//   - POST   /                 : Creates an item (protected).
//   - DELETE /{itemId}         : Deletes an owned item (protected).
//   - PUT    /{itemId}/likes   : Likes an item (protected).
//   - DELETE /{itemId}/likes   : Unlikes an item (protected).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.create)
		r.Delete("/{itemId}", handler.remove)
		r.Put("/{itemId}/likes", handler.like)
		r.Delete("/{itemId}/likes", handler.unlike)
	})

	return router
}

// # Request Payloads

type createItemRequest struct {
	Name     string `json:"name"`
	Weather  string `json:"weather"`
	ImageURL string `json:"imageUrl"`
}

/*
list returns every clothing item.

GET /items

Response:
  - 200: []Item
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.itemService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

/*
create adds a new clothing item owned by the authenticated user.

POST /items

Request:
  - Body: createItemRequest (Name, Weather, ImageURL)

Response:
  - 201: Item: Created entity with owner attribution
  - 400: Validation failure
  - 401: Missing or invalid token
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("name", input.Name).
		MinLen("name", input.Name, constants.NameMinLen).
		MaxLen("name", input.Name, constants.NameMaxLen).
		Required("weather", input.Weather).
		OneOf("weather", input.Weather, WeatherHot, WeatherWarm, WeatherCold).
		Required("imageUrl", input.ImageURL).
		URL("imageUrl", input.ImageURL)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.itemService.Create(request.Context(), CreateInput{
		Name:     input.Name,
		Weather:  input.Weather,
		ImageURL: input.ImageURL,
		OwnerID:  userID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, item)
}

/*
remove deletes an item owned by the authenticated user.

DELETE /items/{itemId}

Response:
  - 200: Item: The deleted entity
  - 400: Malformed item ID
  - 401: Missing or invalid token
  - 403: Item belongs to another user
  - 404: Item does not exist
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID := requestutil.Param(request, "itemId")
	if err := (&validate.Validator{}).HexID("itemId", itemID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.itemService.Delete(request.Context(), itemID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

/*
like records the authenticated user's like on an item.

PUT /items/{itemId}/likes

Response:
  - 200: Item: Updated entity
  - 400: Malformed item ID
  - 401: Missing or invalid token
  - 404: Item does not exist
*/
func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
	handler.updateLikes(writer, request, handler.itemService.Like)
}

/*
unlike removes the authenticated user's like from an item.

DELETE /items/{itemId}/likes

Response:
  - 200: Item: Updated entity
  - 400: Malformed item ID
  - 401: Missing or invalid token
  - 404: Item does not exist
*/
func (handler *Handler) unlike(writer http.ResponseWriter, request *http.Request) {
	handler.updateLikes(writer, request, handler.itemService.Unlike)
}

// updateLikes shares the parameter handling between like and unlike.
func (handler *Handler) updateLikes(
	writer http.ResponseWriter,
	request *http.Request,
	operation func(ctx context.Context, itemIDHex, userIDHex string) (*Item, error),
) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID := requestutil.Param(request, "itemId")
	if err := (&validate.Validator{}).HexID("itemId", itemID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := operation(request.Context(), itemID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}
