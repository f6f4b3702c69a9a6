package security

import (
	"testing"
	"time"

	"github.com/devtutor/devtutor-go/internal/config"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

func newTestJWTProvider() *JWTProvider {
	cfg := &config.JWTConfig{
		Secret:               "test-secret-key-for-testing-purposes",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "test-issuer",
	}
	return NewJWTProvider(cfg)
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       "user-1",
		Username: "testuser",
		Email:    "test@example.com",
		Role:     entity.RoleUser,
	}
}

func TestJWTProvider_GenerateAccessToken(t *testing.T) {
	provider := newTestJWTProvider()
	user := newTestUser()

	token, err := provider.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateAccessToken() returned empty token")
	}
}

func TestJWTProvider_ValidateAccessToken(t *testing.T) {
	provider := newTestJWTProvider()
	user := newTestUser()

	token, err := provider.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := provider.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %v, want %v", claims.UserID, user.ID)
	}
	if claims.Username != user.Username {
		t.Errorf("Username = %v, want %v", claims.Username, user.Username)
	}
	if claims.Role != entity.RoleUser {
		t.Errorf("Role = %v, want %v", claims.Role, entity.RoleUser)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("Issuer = %v, want test-issuer", claims.Issuer)
	}
}

func TestJWTProvider_ValidateAccessToken_Invalid(t *testing.T) {
	provider := newTestJWTProvider()

	if _, err := provider.ValidateAccessToken("not-a-token"); err == nil {
		t.Error("ValidateAccessToken() expected error for garbage token")
	}
}

func TestJWTProvider_ValidateAccessToken_WrongSecret(t *testing.T) {
	provider := newTestJWTProvider()
	token, err := provider.GenerateAccessToken(newTestUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	other := NewJWTProvider(&config.JWTConfig{
		Secret:              "a-different-secret",
		AccessTokenDuration: time.Hour,
		Issuer:              "test-issuer",
	})
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("ValidateAccessToken() expected error for wrong secret")
	}
}

func TestJWTProvider_ValidateAccessToken_Expired(t *testing.T) {
	provider := NewJWTProvider(&config.JWTConfig{
		Secret:              "test-secret-key-for-testing-purposes",
		AccessTokenDuration: -time.Minute,
		Issuer:              "test-issuer",
	})

	token, err := provider.GenerateAccessToken(newTestUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := provider.ValidateAccessToken(token); err != ErrExpiredToken {
		t.Errorf("ValidateAccessToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTProvider_GenerateRefreshToken(t *testing.T) {
	provider := newTestJWTProvider()
	user := newTestUser()

	token, expiresAt, err := provider.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateRefreshToken() returned empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Error("GenerateRefreshToken() expiresAt is in the past")
	}

	claims, err := provider.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if claims.Subject != user.ID {
		t.Errorf("Subject = %v, want %v", claims.Subject, user.ID)
	}
	if claims.ID == "" {
		t.Error("refresh token claims missing unique id")
	}
}

func TestJWTProvider_RefreshTokensAreUnique(t *testing.T) {
	provider := newTestJWTProvider()
	user := newTestUser()

	first, _, err := provider.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	second, _, err := provider.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	if first == second {
		t.Error("consecutive refresh tokens for the same user are identical")
	}
}

func TestJWTProvider_GetAccessTokenDuration(t *testing.T) {
	provider := newTestJWTProvider()
	if got := provider.GetAccessTokenDuration(); got != 3600 {
		t.Errorf("GetAccessTokenDuration() = %v, want 3600", got)
	}
}
