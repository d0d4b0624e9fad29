package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("users: not found")
	ErrEmailTaken         = errors.New("users: email already registered")
	ErrInvalidCredentials = errors.New("users: incorrect email or password")
	ErrUnauthenticated    = errors.New("users: could not validate credentials")
)

// Repository abstracts user storage. Email uniqueness is enforced by the
// implementation; Create returns ErrEmailTaken on a duplicate.
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
}
