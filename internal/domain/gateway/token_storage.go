package gateway

import (
	"context"
	"errors"
)

// ErrNoToken is returned by Load when no session token is persisted.
var ErrNoToken = errors.New("no session token stored")

// TokenStorage persists the session token across client restarts under a
// fixed storage key. Absence of a token means anonymous browsing.
type TokenStorage interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
