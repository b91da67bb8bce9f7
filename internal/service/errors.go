package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields. Recoverable by the caller correcting the request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for BOTH an unknown email
	// and a wrong password. The two internal cases must stay externally
	// indistinguishable so that login cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed wraps failures of the token signing step.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// Token verification failure classes. They exist for server-side
	// diagnostics only: the transport boundary folds all of them into one
	// uniform unauthorized response.
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenIsExpired        = errors.New("token is expired")

	// ErrTokenIsExpiredOrInvalid is the catch-all verification failure used
	// when the underlying error matches none of the classes above.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
