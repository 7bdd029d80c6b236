// Package validators holds input validation that runs at the transport
// boundary, before a request reaches the service layer.
package validators

import "context"

// Validator checks an input value against the rules of its type. Passing
// field names restricts the check to those fields, which lets partial
// updates validate only what they carry.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
