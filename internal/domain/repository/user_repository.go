// Package repository defines data access interfaces for domain entities.
package repository

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// UserRepository defines data access operations for users. Lookups return
// nil without error when no user matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
