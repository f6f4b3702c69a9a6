// Package dao defines the data-access interfaces the repository layer
// delegates to. Implementations live under dao/mongo.
package dao

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// UserDAO defines database operations for users.
type UserDAO interface {
	// Create inserts a new user and assigns its id.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id, nil when absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email, nil when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a user by username, nil when absent.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByExternalID retrieves a user by identity-provider id, nil when absent.
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// Update replaces the stored user document.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByUsername checks if a username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks if an email is taken.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
