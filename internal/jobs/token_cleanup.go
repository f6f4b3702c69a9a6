// Package jobs holds the recurring maintenance jobs registered with the
// scheduler.
package jobs

import (
	"context"

	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/domain/repository"
)

// TokenCleanupJobName identifies the expired refresh token purge.
const TokenCleanupJobName = "refresh-token-cleanup"

// TokenCleanupJob purges expired refresh tokens. Revoked but unexpired
// tokens are kept so rotation reuse can still be detected.
type TokenCleanupJob struct {
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *zap.Logger
}

// NewTokenCleanupJob creates a new TokenCleanupJob instance.
func NewTokenCleanupJob(refreshTokenRepo repository.RefreshTokenRepository, logger *zap.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		refreshTokenRepo: refreshTokenRepo,
		logger:           logger,
	}
}

// Run deletes all expired refresh tokens.
func (j *TokenCleanupJob) Run(ctx context.Context) error {
	deleted, err := j.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return err
	}

	if deleted > 0 {
		j.logger.Info("purged expired refresh tokens", zap.Int64("deleted", deleted))
	}
	return nil
}
