// Package models defines the wire-level records exchanged with the notes
// backend. Multi-word JSON keys are snake_case on the wire.
package models

// User is the identity record returned by the backend. It is immutable once
// fetched; a refetch replaces it wholesale.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// DisplayName returns "First Last" when both parts are non-empty,
// otherwise the username.
func (u User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}
