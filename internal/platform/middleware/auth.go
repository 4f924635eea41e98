// Copyright (c) 2026 WTWR. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wtwr-app/wtwr/internal/platform/apperr"
	"github.com/wtwr-app/wtwr/internal/platform/constants"
	"github.com/wtwr-app/wtwr/internal/platform/ctxutil"
	"github.com/wtwr-app/wtwr/internal/platform/respond"
	"github.com/wtwr-app/wtwr/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the `sec` token
// service, allowing us to easily inject stubs during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (userID string, err error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous ([RequireAuth] gates protected routes).
//  3. If present but malformed, abort with HTTP 401.
//  4. If present, verify the token via [TokenVerifier]; any verification
//     failure (tampered, expired, wrong key) aborts with the same HTTP 401.
//  5. On success, inject [*sec.Identity] into the request context.
//
// The gate runs to completion before any protected handler executes; it never
// partially authorizes a request.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Authorization required"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			// Expired and tampered tokens are reported identically so the
			// response leaks nothing about which check failed.
			userID, err := verifier.Verify(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), &sec.Identity{UserID: userID})
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.Identity] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := GetIdentity(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authorization required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// GetIdentity retrieves the [*sec.Identity] from the [context.Context].
//
// # Returns
//   - A pointer to [*sec.Identity] if the user is authenticated.
//   - nil if the user is anonymous.
func GetIdentity(ctx context.Context) *sec.Identity {
	return ctxutil.GetIdentity(ctx)
}
