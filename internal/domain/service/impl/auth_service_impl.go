// Package impl provides the business logic implementations.
package impl

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/security"
)

// authService implements service.AuthService
type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtProvider      *security.JWTProvider
	passwordHasher   *security.PasswordHasher
}

// NewAuthService creates a new AuthService instance
func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	jwtProvider *security.JWTProvider,
	passwordHasher *security.PasswordHasher,
) service.AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtProvider:      jwtProvider,
		passwordHasher:   passwordHasher,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	role := entity.RoleUser
	if req.Role != "" {
		role = entity.UserRole(req.Role)
		if role == entity.RoleAdmin || !entity.ValidRole(role) {
			return nil, service.ErrInvalidRole
		}
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, service.ErrUserAlreadyExists
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, service.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.generateAuthResponse(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrInvalidCredentials
	}

	if !s.passwordHasher.Verify(req.Password, user.Password) {
		return nil, service.ErrInvalidCredentials
	}

	return s.generateAuthResponse(ctx, user)
}

func (s *authService) RefreshToken(ctx context.Context, req *request.RefreshTokenRequest) (*response.AuthResponse, error) {
	// Validate the refresh token JWT before touching the database
	if _, err := s.jwtProvider.ValidateRefreshToken(req.RefreshToken); err != nil {
		return nil, service.ErrInvalidToken
	}

	refreshToken, err := s.refreshTokenRepo.GetByToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if refreshToken == nil || !refreshToken.IsValid() {
		return nil, service.ErrInvalidToken
	}

	// Rotate: revoke the presented token before issuing replacements
	if err := s.refreshTokenRepo.RevokeByToken(ctx, req.RefreshToken); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, refreshToken.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}

	return s.generateAuthResponse(ctx, user)
}

func (s *authService) IssueTokens(ctx context.Context, userID string) (*response.AuthResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}

	return s.generateAuthResponse(ctx, user)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.refreshTokenRepo.RevokeByToken(ctx, token)
}

func (s *authService) LogoutAll(ctx context.Context, userID string) error {
	return s.refreshTokenRepo.RevokeAllByUserID(ctx, userID)
}

func (s *authService) generateAuthResponse(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	accessToken, err := s.jwtProvider.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshTokenString, expiresAt, err := s.jwtProvider.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		Token:     refreshTokenString,
		ExpiresAt: expiresAt,
	}
	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &response.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		TokenType:    "Bearer",
		ExpiresIn:    s.jwtProvider.GetAccessTokenDuration(),
		User:         response.NewUserResponse(user),
	}, nil
}
