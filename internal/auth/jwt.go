package auth

import (
	"errors"
	"fmt"
	"time"

	"microblog-platform/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager issues and verifies signed, time-limited bearer tokens.
// The signing secret and algorithm are loaded once at startup and never
// change for the lifetime of the process.
type Manager struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(cfg config.AuthConfig) (*Manager, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	switch method {
	case jwt.SigningMethodHS256, jwt.SigningMethodHS384, jwt.SigningMethodHS512:
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.JWTAlgorithm)
	}

	return &Manager{
		secret:     []byte(cfg.JWTSecret),
		method:     method,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}, nil
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

/* ===================== ISSUE TOKENS ===================== */

// IssueAccessToken mints a short-lived access token for the given user.
func (m *Manager) IssueAccessToken(now time.Time, email string, userID int64) (string, error) {
	return m.issue(now, TokenTypeAccess, email, userID, m.accessTTL)
}

// IssueRefreshToken mints a long-lived refresh token for the given user.
func (m *Manager) IssueRefreshToken(now time.Time, email string, userID int64) (string, error) {
	return m.issue(now, TokenTypeRefresh, email, userID, m.refreshTTL)
}

// IssuePair mints both token variants, as returned at login.
func (m *Manager) IssuePair(now time.Time, email string, userID int64) (TokenPair, error) {
	access, err := m.IssueAccessToken(now, email, userID)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := m.IssueRefreshToken(now, email, userID)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

/* ===================== VERIFY TOKEN ===================== */

// Verify decodes tokenString, checking signature, expiry, subject presence
// and token type. Failures are reported via the sentinel errors in errors.go.
func (m *Manager) Verify(tokenString string, expected TokenType, now time.Time) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)

	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, classifyParseError(err)
	}

	if claims.Subject == "" {
		return Claims{}, ErrMissingSubject
	}
	if claims.TokenType != expected {
		return Claims{}, ErrWrongTokenType
	}
	if claims.UserID <= 0 {
		return Claims{}, ErrTokenMalformed
	}

	return claims, nil
}

// Refresh trades a valid refresh token for a new access token.
// Verification failures propagate so the HTTP layer can map them to 401.
func (m *Manager) Refresh(refreshToken string, now time.Time) (string, error) {
	claims, err := m.Verify(refreshToken, TokenTypeRefresh, now)
	if err != nil {
		return "", err
	}
	return m.IssueAccessToken(now, claims.Subject, claims.UserID)
}

/* ===================== INTERNAL ===================== */

func (m *Manager) issue(now time.Time, tokenType TokenType, email string, userID int64, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		UserID:    userID,
		TokenType: tokenType,
	}

	t := jwt.NewWithClaims(m.method, claims)
	return t.SignedString(m.secret)
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSignature
	default:
		return ErrTokenMalformed
	}
}
