// Copyright (c) 2026 WTWR. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces (e.g. the middleware's TokenVerifier).
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors distinguishing the two verification failure modes.
//
// Callers map both onto HTTP 401 but may log them differently.
var (
	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid is returned for any other verification failure:
	// bad signature, wrong algorithm, malformed token, missing subject.
	ErrTokenInvalid = errors.New("sec: token invalid")
)

// Identity is the resolved request identity attached to the context by the
// authentication middleware after a successful token verification.
type Identity struct {
	// UserID is the hex document ID of the authenticated user.
	UserID string
}

// Claims represents the payload embedded inside a JWT access token.
//
// Only the registered claims are used: the subject carries the user ID, and
// iat/exp bound the 7-day validity window. Nothing else is embedded so a
// stolen token reveals nothing beyond an opaque identifier.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// # Key Management
//
// The signing secret is injected once at construction, never read from the
// environment at call time. This keeps tests isolated (each test may use a
// distinct key) and guarantees the process fails fast at startup when the
// secret is missing instead of issuing unsigned tokens.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
}

// NewTokenService creates a new TokenService.
//
// It returns an error if the secret is empty so that a misconfigured
// deployment aborts at startup.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	if timeToLive <= 0 {
		return nil, errors.New("sec: token time-to-live must be positive")
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
	}, nil
}

// Issue creates a signed access token for the given user ID.
//
// The token carries iat = now and exp = now + TTL, both derived from a single
// clock reading.
func (service *TokenService) Issue(userID string) (string, error) {
	currentTime := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string and returns the
// embedded user ID.
//
// # Failure Modes
//
//   - [ErrTokenExpired] when the signature is fine but exp has passed.
//   - [ErrTokenInvalid] for every other failure (tampered signature, token
//     signed with a different key, non-HMAC algorithm, malformed string).
//
// The algorithm is pinned to HMAC: a token declaring any other 'alg' header
// is rejected outright, so clients cannot negotiate a weaker scheme.
func (service *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
