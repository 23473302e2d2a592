package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	sharedauth "github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/auth"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	t.Setenv("ENV", "test")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Auth())
	router.GET("/api/v1/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/api/v1/files/some/key", func(c *gin.Context) { c.String(http.StatusOK, "file") })
	router.GET("/api/v1/private", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"sub":   UserIDFromContext(c),
			"email": UserEmailFromContext(c),
		})
	})
	return router
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthAllowsPublicPaths(t *testing.T) {
	router := newAuthRouter(t)

	for _, path := range []string{"/api/v1/health", "/api/v1/files/some/key"} {
		if rec := get(router, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", path, rec.Code)
		}
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	router := newAuthRouter(t)

	if rec := get(router, "/api/v1/private", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	router := newAuthRouter(t)

	if rec := get(router, "/api/v1/private", "garbage"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAuthStoresIdentityInContext(t *testing.T) {
	router := newAuthRouter(t)

	token, err := sharedauth.SignJWT(sharedauth.Claims{Sub: "google:jane", Email: "jane@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	rec := get(router, "/api/v1/private", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"google:jane", "jane@example.com"} {
		if !strings.Contains(body, want) {
			t.Fatalf("response %q missing %q", body, want)
		}
	}
}
