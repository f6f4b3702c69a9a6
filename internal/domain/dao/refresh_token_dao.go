package dao

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// RefreshTokenDAO defines database operations for refresh tokens.
type RefreshTokenDAO interface {
	// Create inserts a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByToken retrieves a refresh token by its value, nil when absent.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// RevokeByToken marks a specific refresh token revoked.
	RevokeByToken(ctx context.Context, token string) error

	// RevokeAllByUserID marks all of a user's refresh tokens revoked.
	RevokeAllByUserID(ctx context.Context, userID string) error

	// DeleteExpired removes expired token records, returning how many went away.
	DeleteExpired(ctx context.Context) (int64, error)
}
