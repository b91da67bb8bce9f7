package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the persistence layer at creation and is
	// immutable thereafter.
	UserID int64 `json:"id"`

	// Email is the unique natural key used to look the account up
	// during login and duplicate checks.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordDigest stores the bcrypt digest of the user's password.
	// This value MUST be a one-way hash, never plaintext. It is excluded
	// from every JSON rendering; only the persistence layer reads it.
	PasswordDigest string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Set at insertion, immutable.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// View returns the sanitized external representation of the user.
// The password digest is not part of UserView by construction, so a
// serialized view can never leak credential material.
func (u User) View() UserView {
	return UserView{
		ID:        u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// UserView is the response-safe projection of a User.
// It is the only user shape handlers are allowed to serialize.
type UserView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
