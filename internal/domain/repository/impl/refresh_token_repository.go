package impl

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/dao"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
)

// refreshTokenRepository implements repository.RefreshTokenRepository by
// delegating to RefreshTokenDAO.
type refreshTokenRepository struct {
	dao dao.RefreshTokenDAO
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository instance.
func NewRefreshTokenRepository(tokenDAO dao.RefreshTokenDAO) repository.RefreshTokenRepository {
	return &refreshTokenRepository{dao: tokenDAO}
}

// Create inserts a new refresh token.
func (r *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	return r.dao.Create(ctx, token)
}

// GetByToken retrieves a refresh token by its opaque token string.
func (r *refreshTokenRepository) GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	return r.dao.FindByToken(ctx, token)
}

// RevokeByToken marks a single refresh token as revoked.
func (r *refreshTokenRepository) RevokeByToken(ctx context.Context, token string) error {
	return r.dao.RevokeByToken(ctx, token)
}

// RevokeAllByUserID marks all of a user's refresh tokens as revoked.
func (r *refreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID string) error {
	return r.dao.RevokeAllByUserID(ctx, userID)
}

// DeleteExpired removes tokens past their expiry and returns how many.
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	return r.dao.DeleteExpired(ctx)
}
