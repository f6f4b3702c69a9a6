package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devtutor/devtutor-go/internal/config"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/security"
)

func setupAuthMiddleware(t *testing.T) (*AuthMiddleware, *security.JWTProvider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtProvider := security.NewJWTProvider(&config.JWTConfig{
		Secret:               "test-secret-key-for-testing-purposes-only",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "test",
	})
	securityService := security.NewSecurityService(jwtProvider)
	return NewAuthMiddleware(jwtProvider, securityService), jwtProvider
}

func accessTokenFor(t *testing.T, jwtProvider *security.JWTProvider, role entity.UserRole) string {
	t.Helper()
	token, err := jwtProvider.GenerateAccessToken(&entity.User{
		ID:       "user-1",
		Username: "testuser",
		Email:    "test@example.com",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	return token
}

func protectedRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{m.Authenticate()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m, jwtProvider := setupAuthMiddleware(t)
	router := protectedRouter(m)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + accessTokenFor(t, jwtProvider, entity.RoleUser), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"malformed header", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestAuthMiddleware_Authenticate_ExpiredToken(t *testing.T) {
	m, _ := setupAuthMiddleware(t)

	expiredProvider := security.NewJWTProvider(&config.JWTConfig{
		Secret:               "test-secret-key-for-testing-purposes-only",
		AccessTokenDuration:  -time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "test",
	})
	token := accessTokenFor(t, expiredProvider, entity.RoleUser)

	router := protectedRouter(m)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, jwtProvider := setupAuthMiddleware(t)
	router := protectedRouter(m, m.RequireRole(entity.RoleInstructor, entity.RoleAdmin))

	tests := []struct {
		name string
		role entity.UserRole
		want int
	}{
		{"instructor allowed", entity.RoleInstructor, http.StatusOK},
		{"admin allowed", entity.RoleAdmin, http.StatusOK},
		{"plain user forbidden", entity.RoleUser, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, jwtProvider, tt.role))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole_Unauthenticated(t *testing.T) {
	m, _ := setupAuthMiddleware(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	// RequireRole without Authenticate in front sees no claims
	router.GET("/admin", m.RequireRole(entity.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	m, jwtProvider := setupAuthMiddleware(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	securityService := security.NewSecurityService(jwtProvider)
	router.GET("/public", m.OptionalAuth(), func(c *gin.Context) {
		if claims := securityService.GetCurrentClaims(c); claims != nil {
			c.String(http.StatusOK, claims.UserID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	// Without a token the request still passes
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "anonymous" {
		t.Errorf("anonymous request = %d %q", rec.Code, rec.Body.String())
	}

	// With a valid token the claims are attached
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, jwtProvider, entity.RoleUser))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Body.String() != "user-1" {
		t.Errorf("authenticated request body = %q, want user-1", rec.Body.String())
	}

	// A bad token degrades to anonymous instead of failing
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "anonymous" {
		t.Errorf("bad-token request = %d %q", rec.Code, rec.Body.String())
	}
}
