// Package utils provides general-purpose helpers shared across the
// application: type-safe context keys, password hashing, JSON response
// writing, and JWT token generation and validation.
package utils

import "context"

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated user's id is stored
// in the request context by the auth middleware.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user id from the context.
//
// The ok flag is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
