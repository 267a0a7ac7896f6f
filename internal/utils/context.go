// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, secret hashing,
// HTTP response writing, HTTP client initialization, session token
// generation and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/flight-guardian/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the verified session claims of the
// caller in the context. The auth middleware writes it; handlers read it via
// GetSessionFromContext.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, claims)
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the session claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (models.SessionClaims, bool) {
	claims, ok := ctx.Value(SessionCtxKey).(models.SessionClaims)
	return claims, ok
}

// WithSession returns a copy of ctx carrying claims under [SessionCtxKey].
func WithSession(ctx context.Context, claims models.SessionClaims) context.Context {
	return context.WithValue(ctx, SessionCtxKey, claims)
}
