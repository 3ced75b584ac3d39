package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/pkg/jwt"
)

func setupAuthRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AdminAuth(manager), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestAdminAuth_NoToken(t *testing.T) {
	r := setupAuthRouter(jwt.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAdminAuth_BearerToken(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	r := setupAuthRouter(manager)

	token, err := manager.Generate()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAdminAuth_Cookie(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	r := setupAuthRouter(manager)

	token, err := manager.Generate()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAdminAuth_ExpiredToken(t *testing.T) {
	expired := jwt.NewManager("secret", -time.Minute)
	r := setupAuthRouter(jwt.NewManager("secret", time.Hour))

	token, err := expired.Generate()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAdminAuth_WrongSecret(t *testing.T) {
	other := jwt.NewManager("other-secret", time.Hour)
	r := setupAuthRouter(jwt.NewManager("secret", time.Hour))

	token, err := other.Generate()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
