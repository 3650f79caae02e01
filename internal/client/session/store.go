// Package session owns the persisted bearer token for the ReWear
// client. The token survives process restarts; there is no client-side
// expiry tracking — an expired token is discovered reactively when a
// profile fetch fails with an authorization error.
package session

import "context"

// TokenKey is the fixed storage key the bearer token lives under.
const TokenKey = "authToken"

// Store is the read/write contract for the session token.
//
// Token returns the current token, or "" with a nil error when no
// session exists. Save replaces the token. Clear removes it; clearing
// an absent token is a no-op.
//
// Writes are reserved for the auth service, which owns the token
// lifecycle. Everything else treats the store as read-only.
type Store interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
