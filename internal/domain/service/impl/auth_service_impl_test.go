package impl

import (
	"context"
	"testing"
	"time"

	"github.com/devtutor/devtutor-go/internal/config"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/security"
	"github.com/devtutor/devtutor-go/internal/testutil/mocks"
)

func setupAuthService(t *testing.T) (service.AuthService, *mocks.MockUserRepository, *mocks.MockRefreshTokenRepository) {
	t.Helper()
	userRepo := mocks.NewMockUserRepository()
	refreshTokenRepo := mocks.NewMockRefreshTokenRepository()

	jwtProvider := security.NewJWTProvider(&config.JWTConfig{
		Secret:               "test-secret-key-for-testing-purposes-only",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "test",
	})
	passwordHasher := security.NewPasswordHasher()

	authService := NewAuthService(userRepo, refreshTokenRepo, jwtProvider, passwordHasher)
	return authService, userRepo, refreshTokenRepo
}

func TestAuthService_Register_Success(t *testing.T) {
	authService, _, _ := setupAuthService(t)
	ctx := context.Background()

	resp, err := authService.Register(ctx, &request.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("Register() AccessToken is empty")
	}
	if resp.RefreshToken == "" {
		t.Error("Register() RefreshToken is empty")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("TokenType = %v, want Bearer", resp.TokenType)
	}
	if resp.ExpiresIn != 900 {
		t.Errorf("ExpiresIn = %v, want 900", resp.ExpiresIn)
	}
	if resp.User.Role != string(entity.RoleUser) {
		t.Errorf("Role = %v, want user (default)", resp.User.Role)
	}
}

func TestAuthService_Register_InstructorRole(t *testing.T) {
	authService, _, _ := setupAuthService(t)

	resp, err := authService.Register(context.Background(), &request.RegisterRequest{
		Username: "mentor",
		Email:    "mentor@example.com",
		Password: "password123",
		Role:     "instructor",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if resp.User.Role != string(entity.RoleInstructor) {
		t.Errorf("Role = %v, want instructor", resp.User.Role)
	}
}

func TestAuthService_Register_AdminRoleRejected(t *testing.T) {
	authService, userRepo, _ := setupAuthService(t)

	_, err := authService.Register(context.Background(), &request.RegisterRequest{
		Username: "wannabe",
		Email:    "wannabe@example.com",
		Password: "password123",
		Role:     "admin",
	})
	if err != service.ErrInvalidRole {
		t.Fatalf("Register() error = %v, want ErrInvalidRole", err)
	}
	if userRepo.Count() != 0 {
		t.Error("Register() stored a user despite rejected role")
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	authService, userRepo, _ := setupAuthService(t)

	userRepo.AddUser(&entity.User{Username: "taken", Email: "other@example.com"})

	_, err := authService.Register(context.Background(), &request.RegisterRequest{
		Username: "taken",
		Email:    "new@example.com",
		Password: "password123",
	})
	if err != service.ErrUserAlreadyExists {
		t.Errorf("Register() error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService, userRepo, _ := setupAuthService(t)

	userRepo.AddUser(&entity.User{Username: "other", Email: "taken@example.com"})

	_, err := authService.Register(context.Background(), &request.RegisterRequest{
		Username: "newuser",
		Email:    "taken@example.com",
		Password: "password123",
	})
	if err != service.ErrUserAlreadyExists {
		t.Errorf("Register() error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestAuthService_Register_PasswordIsHashed(t *testing.T) {
	authService, userRepo, _ := setupAuthService(t)
	ctx := context.Background()

	if _, err := authService.Register(ctx, &request.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, _ := userRepo.GetByUsername(ctx, "testuser")
	if user == nil {
		t.Fatal("user not stored")
	}
	if user.Password == "password123" {
		t.Error("password stored as plaintext")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	authService, _, _ := setupAuthService(t)
	ctx := context.Background()

	if _, err := authService.Register(ctx, &request.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	resp, err := authService.Login(ctx, &request.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("Login() AccessToken is empty")
	}
	if resp.User.Username != "testuser" {
		t.Errorf("Username = %v, want testuser", resp.User.Username)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService, _, _ := setupAuthService(t)
	ctx := context.Background()

	if _, err := authService.Register(ctx, &request.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := authService.Login(ctx, &request.LoginRequest{
		Email:    "test@example.com",
		Password: "wrongpassword",
	})
	if err != service.ErrInvalidCredentials {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	authService, _, _ := setupAuthService(t)

	_, err := authService.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if err != service.ErrInvalidCredentials {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_RefreshToken_Rotation(t *testing.T) {
	authService, _, tokenRepo := setupAuthService(t)
	ctx := context.Background()

	registered, err := authService.Register(ctx, &request.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	refreshed, err := authService.RefreshToken(ctx, &request.RefreshTokenRequest{
		RefreshToken: registered.RefreshToken,
	})
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if refreshed.RefreshToken == registered.RefreshToken {
		t.Error("RefreshToken() did not rotate the refresh token")
	}

	// The presented token is revoked; replaying it must fail.
	stored, _ := tokenRepo.GetByToken(ctx, registered.RefreshToken)
	if stored == nil || !stored.Revoked {
		t.Error("presented refresh token was not revoked")
	}
	if _, err := authService.RefreshToken(ctx, &request.RefreshTokenRequest{
		RefreshToken: registered.RefreshToken,
	}); err != service.ErrInvalidToken {
		t.Errorf("replayed RefreshToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	authService, _, _ := setupAuthService(t)

	_, err := authService.RefreshToken(context.Background(), &request.RefreshTokenRequest{
		RefreshToken: "not-a-jwt",
	})
	if err != service.ErrInvalidToken {
		t.Errorf("RefreshToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestAuthService_IssueTokens(t *testing.T) {
	authService, _, tokenRepo := setupAuthService(t)
	ctx := context.Background()

	registered, err := authService.Register(ctx, &request.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	resp, err := authService.IssueTokens(ctx, registered.User.ID)
	if err != nil {
		t.Fatalf("IssueTokens() error = %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("IssueTokens() returned empty tokens")
	}
	if tokenRepo.ActiveCount(registered.User.ID) != 2 {
		t.Errorf("ActiveCount = %d, want 2", tokenRepo.ActiveCount(registered.User.ID))
	}

	if _, err := authService.IssueTokens(ctx, "missing"); err != service.ErrUserNotFound {
		t.Errorf("IssueTokens(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	authService, _, tokenRepo := setupAuthService(t)
	ctx := context.Background()

	resp, err := authService.Register(ctx, &request.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := authService.Logout(ctx, resp.RefreshToken); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	stored, _ := tokenRepo.GetByToken(ctx, resp.RefreshToken)
	if stored == nil || !stored.Revoked {
		t.Error("Logout() did not revoke the token")
	}
}

func TestAuthService_LogoutAll(t *testing.T) {
	authService, _, tokenRepo := setupAuthService(t)
	ctx := context.Background()

	resp, err := authService.Register(ctx, &request.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	// Second session
	if _, err := authService.Login(ctx, &request.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	userID := resp.User.ID
	if tokenRepo.ActiveCount(userID) != 2 {
		t.Fatalf("ActiveCount = %d, want 2", tokenRepo.ActiveCount(userID))
	}

	if err := authService.LogoutAll(ctx, userID); err != nil {
		t.Fatalf("LogoutAll() error = %v", err)
	}
	if tokenRepo.ActiveCount(userID) != 0 {
		t.Errorf("ActiveCount = %d after LogoutAll, want 0", tokenRepo.ActiveCount(userID))
	}
}
