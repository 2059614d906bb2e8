package models

// LoginRequest is the credentials payload for POST /auth/token/.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /auth/register/.
// First and last name are optional.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// TokenPair is the response of the token and token-refresh endpoints.
// Both values are opaque to the client.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest is the payload for POST /auth/token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// ChangePasswordRequest is the payload for POST /auth/change-password/.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// MessageResponse is the generic confirmation body, e.g. after a password
// change or a delete.
type MessageResponse struct {
	Detail string `json:"detail"`
}
