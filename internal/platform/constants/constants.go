// Copyright (c) 2026 WTWR. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, token lifetimes, and cross-cutting keys that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Security: JWT issuer and token lifetime.
  - JSON Field Identifiers: Shared payload keys.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "wtwr-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "wtwr.app"

	// AuthTokenTTL is the fixed validity window of an access token.
	// Tokens older than this are rejected regardless of signature validity.
	AuthTokenTTL = 7 * 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # JSON Field Identifiers

const (
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldToken   = "token"
)

// # Validation Bounds

const (
	// NameMinLen and NameMaxLen bound user and item display names.
	NameMinLen = 2
	NameMaxLen = 30

	// ObjectIDHexLen is the length of a document identifier in hex form.
	ObjectIDHexLen = 24
)

// # Database

const (
	// CollectionUsers is the MongoDB collection holding user accounts.
	CollectionUsers = "users"

	// CollectionItems is the MongoDB collection holding clothing items.
	CollectionItems = "items"
)
