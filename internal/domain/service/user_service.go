package service

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
)

// UserService defines user directory and profile operations.
type UserService interface {
	// GetMe returns the caller's own record.
	GetMe(ctx context.Context, userID string) (*response.UserResponse, error)

	// GetProfile returns the caller's record with owned blogs and courses
	// attached.
	GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error)

	// UpdateProfile applies a whitelisted partial update to the caller's
	// profile. Username and email changes re-check uniqueness.
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// ChangePassword verifies the current password and stores a new hash.
	ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error
}
