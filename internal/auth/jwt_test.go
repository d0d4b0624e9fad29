package auth

import (
	"errors"
	"testing"
	"time"

	"microblog-platform/internal/config"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(config.AuthConfig{
		JWTSecret:       "secret",
		JWTAlgorithm:    "HS256",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	m := testManager(t)

	now := time.Unix(1700000000, 0).UTC()
	pair, err := m.IssuePair(now, "alice@example.com", 42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token strings")
	}

	claims, err := m.Verify(pair.AccessToken, TokenTypeAccess, now.Add(1*time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "alice@example.com" || claims.UserID != 42 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token_type, got %q", claims.TokenType)
	}
}

func TestVerifyAccessTokenExpiry(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	tok, err := m.IssueAccessToken(now, "alice@example.com", 1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// valid strictly inside [now, now+30m)
	if _, err := m.Verify(tok, TokenTypeAccess, now.Add(30*time.Minute-time.Second)); err != nil {
		t.Fatalf("expected valid just before expiry, got %v", err)
	}
	if _, err := m.Verify(tok, TokenTypeAccess, now.Add(30*time.Minute)); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at expiry, got %v", err)
	}
	if _, err := m.Verify(tok, TokenTypeAccess, now.Add(24*time.Hour)); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired after expiry, got %v", err)
	}
}

func TestVerifyRefreshTokenExpiry(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	tok, err := m.IssueRefreshToken(now, "alice@example.com", 1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.Verify(tok, TokenTypeRefresh, now.Add(7*24*time.Hour-time.Minute)); err != nil {
		t.Fatalf("expected valid just before expiry, got %v", err)
	}
	if _, err := m.Verify(tok, TokenTypeRefresh, now.Add(7*24*time.Hour)); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := testManager(t)
	other, err := NewManager(config.AuthConfig{
		JWTSecret:       "other-secret",
		JWTAlgorithm:    "HS256",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}

	now := time.Unix(1700000000, 0).UTC()
	tok, err := other.IssueAccessToken(now, "alice@example.com", 1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.Verify(tok, TokenTypeAccess, now); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	for _, tok := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		if _, err := m.Verify(tok, TokenTypeAccess, now); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	pair, err := m.IssuePair(now, "alice@example.com", 1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.Verify(pair.RefreshToken, TokenTypeAccess, now); !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("expected ErrWrongTokenType for refresh-as-access, got %v", err)
	}
	if _, err := m.Verify(pair.AccessToken, TokenTypeRefresh, now); !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("expected ErrWrongTokenType for access-as-refresh, got %v", err)
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	tok, err := m.IssueAccessToken(now, "", 1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify(tok, TokenTypeAccess, now); !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	refresh, err := m.IssueRefreshToken(now, "alice@example.com", 42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	later := now.Add(time.Hour)
	access, err := m.Refresh(refresh, later)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := m.Verify(access, TokenTypeAccess, later)
	if err != nil {
		t.Fatalf("verify refreshed access: %v", err)
	}
	if claims.Subject != "alice@example.com" || claims.UserID != 42 {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// An access token must not be usable for refreshing.
	if _, err := m.Refresh(access, later); !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("expected ErrWrongTokenType, got %v", err)
	}
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager(config.AuthConfig{JWTAlgorithm: "HS256"}); err == nil {
		t.Fatalf("expected error for missing secret")
	}
	if _, err := NewManager(config.AuthConfig{JWTSecret: "s", JWTAlgorithm: "RS256"}); err == nil {
		t.Fatalf("expected error for non-HMAC algorithm")
	}
	if _, err := NewManager(config.AuthConfig{JWTSecret: "s", JWTAlgorithm: "HS512"}); err != nil {
		t.Fatalf("expected HS512 accepted, got %v", err)
	}
}
