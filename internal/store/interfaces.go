package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-guard/models"
)

// UserRepository is the credential store adapter.
// It is the only component allowed to read or write persisted user records;
// everything above it works with sanitized views or in-memory values.
type UserRepository interface {
	// CreateUser persists a new user record and returns it with
	// server-assigned fields populated. Returns ErrEmailAlreadyExists
	// when the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its email natural key.
	// Returns ErrNoUserWasFound when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
