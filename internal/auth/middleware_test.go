package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeResolver struct {
	byEmail map[string]Identity
}

func (f *fakeResolver) ResolveIdentity(ctx context.Context, email string) (Identity, error) {
	if id, ok := f.byEmail[email]; ok {
		return id, nil
	}
	return Identity{}, ErrNoIdentity
}

func setupProtected(t *testing.T, m *Manager, resolver IdentityResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/p", RequireUser(m, resolver), func(c *gin.Context) {
		id, err := CurrentIdentity(c.Request.Context())
		if err != nil {
			c.AbortWithStatus(500)
			return
		}
		c.JSON(200, gin.H{"email": id.Email})
	})
	return r
}

func TestRequireUser_MissingHeader(t *testing.T) {
	m := testManager(t)
	r := setupProtected(t, m, &fakeResolver{})

	for _, header := range []string{"", "Token abc", "bearer lowercase"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		if w.Code != 401 {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestRequireUser_InvalidToken(t *testing.T) {
	m := testManager(t)
	r := setupProtected(t, m, &fakeResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireUser_UnknownSubjectCollapsesTo401(t *testing.T) {
	m := testManager(t)
	r := setupProtected(t, m, &fakeResolver{})

	tok, err := m.IssueAccessToken(time.Now(), "ghost@example.com", 7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Fatalf("expected 401 for unknown subject, got %d", w.Code)
	}
}

func TestRequireUser_ResolvesIdentity(t *testing.T) {
	m := testManager(t)
	resolver := &fakeResolver{byEmail: map[string]Identity{
		"alice@example.com": {UserID: 7, Email: "alice@example.com"},
	}}
	r := setupProtected(t, m, resolver)

	tok, err := m.IssueAccessToken(time.Now(), "alice@example.com", 7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestRequireUser_RefreshTokenRejected(t *testing.T) {
	m := testManager(t)
	resolver := &fakeResolver{byEmail: map[string]Identity{
		"alice@example.com": {UserID: 7, Email: "alice@example.com"},
	}}
	r := setupProtected(t, m, resolver)

	tok, err := m.IssueRefreshToken(time.Now(), "alice@example.com", 7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Fatalf("expected 401 for refresh token on protected route, got %d", w.Code)
	}
}
