package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-guard/models"
)

// AuthService bundles the registration, login, and token operations of the
// authentication core. Implementations are stateless after construction and
// safe for concurrent use.
type AuthService interface {
	// RegisterUser validates the request, rejects duplicate emails before
	// any hashing work, hashes the password, and persists the new account.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates the credentials and returns the account record.
	// Unknown email and wrong password are indistinguishable to callers.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed identity token for the given user with
	// the configured TTL.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token string and returns the decoded token.
	// Failures are classified as ErrTokenMalformed, ErrTokenSignatureInvalid,
	// or ErrTokenIsExpired.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
