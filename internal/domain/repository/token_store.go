package repository

import "context"

// TokenStore manages opaque bearer tokens. Each login mints a fresh
// token, so a user may hold several live tokens at once; Revoke kills
// exactly one of them.
type TokenStore interface {
	// Mint creates a new token bound to the given user and returns it.
	Mint(ctx context.Context, userID string) (string, error)
	// Resolve returns the user id a token is bound to, or ErrNotFound.
	Resolve(ctx context.Context, token string) (string, error)
	// Revoke invalidates a single token. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}
