// Package tokens persists the session's opaque credential strings in the
// client's local database. Values are sealed at rest; the store never
// interprets token contents.
package tokens

import "context"

// Storage keys for the two credentials.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Repository is the durable key-value contract for tokens. Get returns an
// empty string for an absent key; Set overwrites. SetPair replaces both
// tokens atomically so no reader ever observes a mixed pair.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	SetPair(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}
