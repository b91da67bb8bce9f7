package models

// RegisterRequest is the payload accepted by the registration endpoint.
// All three fields are required; the flow rejects the request before any
// hashing work when one of them is empty.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the payload accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful authentication.
// Token carries the compact signed JWT; User is the sanitized account view.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// ErrorResponse is the uniform error body for every failed request.
// Internal failure distinctions are never leaked here; callers only see
// the message chosen at the transport boundary.
type ErrorResponse struct {
	Message string `json:"message"`
}
