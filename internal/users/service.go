package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"microblog-platform/internal/auth"
)

// Service implements registration, credential login, token refresh and the
// identity resolution used by the bearer middleware.
type Service struct {
	repo   Repository
	tokens *auth.Manager
	// clock is injectable for deterministic tests.
	clock func() time.Time
}

func NewService(repo Repository, tokens *auth.Manager) *Service {
	return &Service{repo: repo, tokens: tokens, clock: time.Now}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    s.clock().UTC(),
	}
	return s.repo.Create(ctx, u)
}

// Login verifies credentials and mints an access/refresh token pair.
// A missing user and a wrong password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.TokenPair{}, ErrInvalidCredentials
		}
		return auth.TokenPair{}, err
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		return auth.TokenPair{}, ErrInvalidCredentials
	}

	return s.tokens.IssuePair(s.clock(), u.Email, u.ID)
}

// RefreshAccessToken trades a valid refresh token for a new access token.
func (s *Service) RefreshAccessToken(refreshToken string) (string, error) {
	return s.tokens.Refresh(refreshToken, s.clock())
}

// ResolveIdentity backs auth.RequireUser: the verified subject email is
// looked up in storage. An unknown email resolves to ErrUnauthenticated so
// the middleware cannot leak which emails exist.
func (s *Service) ResolveIdentity(ctx context.Context, email string) (auth.Identity, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.Identity{}, ErrUnauthenticated
		}
		return auth.Identity{}, err
	}
	return auth.Identity{
		UserID:   u.ID,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		IsActive: u.IsActive,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req RegisterRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u.Name = req.Name
	u.Email = req.Email
	u.PasswordHash = hash
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
