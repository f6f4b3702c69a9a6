// Package service defines the business logic interfaces and their sentinel
// errors. Controllers translate sentinels into HTTP statuses.
package service

import (
	"context"
	"errors"

	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidRole        = errors.New("requested role is not allowed")
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates a new user account
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)

	// Login authenticates a user by email and returns tokens
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)

	// RefreshToken rotates a refresh token and returns new tokens
	RefreshToken(ctx context.Context, req *request.RefreshTokenRequest) (*response.AuthResponse, error)

	// IssueTokens issues a fresh token pair for an already-authenticated user
	IssueTokens(ctx context.Context, userID string) (*response.AuthResponse, error)

	// Logout revokes a single refresh token
	Logout(ctx context.Context, token string) error

	// LogoutAll revokes all refresh tokens for a user
	LogoutAll(ctx context.Context, userID string) error
}
