// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, UUID generation, and JWT token generation
// and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-guard/models"
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

// AuthClaimsCtxKey is the key used to store the verified identity claims in
// the context. The authentication middleware writes the claims after a
// successful token verification; protected handlers read them back via
// GetClaimsFromContext. Claims stored this way are a value and therefore
// read-only for the remainder of the call.
var AuthClaimsCtxKey = contextKey("authClaims")

// GetClaimsFromContext retrieves the verified identity claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	claims, ok := utils.GetClaimsFromContext(ctx)
//	if !ok {
//	    // handle missing identity in context
//	}
func GetClaimsFromContext(ctx context.Context) (models.AuthClaims, bool) {
	claims, ok := ctx.Value(AuthClaimsCtxKey).(models.AuthClaims)
	return claims, ok
}
