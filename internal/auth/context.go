package auth

import (
	"context"
	"errors"
)

// Identity is the resolved caller of a request, looked up from storage
// via the token's subject claim.
type Identity struct {
	UserID   int64
	Email    string
	IsAdmin  bool
	IsActive bool
}

// ErrNoIdentity is returned when no identity has been attached to the context.
var ErrNoIdentity = errors.New("auth: no identity in context")

type ctxKey int

const ctxIdentity ctxKey = iota

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

// CurrentIdentity returns the identity attached by RequireUser.
func CurrentIdentity(ctx context.Context) (Identity, error) {
	if id, ok := ctx.Value(ctxIdentity).(Identity); ok && id.UserID != 0 {
		return id, nil
	}
	return Identity{}, ErrNoIdentity
}
