package http

import "errors"

// Errors produced while parsing the Authorization header in the auth
// middleware. All of them map to 401 in the response.
var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader covers a header that lacks a
	// space-separated scheme and token pair.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
