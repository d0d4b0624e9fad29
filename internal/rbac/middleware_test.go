package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"microblog-platform/internal/auth"

	"github.com/gin-gonic/gin"
)

func withIdentity(id auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", withIdentity(auth.Identity{UserID: 1, Email: "a@b.c", IsAdmin: true}), RequireAdmin(), func(c *gin.Context) {
		c.Status(200)
	})

	if w := serve(r); w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", withIdentity(auth.Identity{UserID: 1, Email: "a@b.c"}), RequireAdmin(), func(c *gin.Context) {
		c.Status(200)
	})

	if w := serve(r); w.Code != 403 {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireAdmin_NoIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", RequireAdmin(), func(c *gin.Context) {
		c.Status(200)
	})

	if w := serve(r); w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", RequireAuthenticated(), func(c *gin.Context) {
		c.Status(200)
	})
	if w := serve(r); w.Code != 403 {
		t.Fatalf("expected 403 without identity, got %d", w.Code)
	}

	r2 := gin.New()
	r2.GET("/x", withIdentity(auth.Identity{UserID: 2, Email: "a@b.c"}), RequireAuthenticated(), func(c *gin.Context) {
		c.Status(200)
	})
	if w := serve(r2); w.Code != 200 {
		t.Fatalf("expected 200 with identity, got %d", w.Code)
	}
}
