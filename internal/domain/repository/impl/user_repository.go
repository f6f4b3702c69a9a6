// Package impl provides repository implementations that delegate to the DAO layer.
// This separation allows repositories to focus on business logic while DAOs handle
// database-specific operations.
package impl

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/dao"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
)

// userRepository implements repository.UserRepository by delegating to UserDAO.
type userRepository struct {
	dao dao.UserDAO
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return &userRepository{dao: userDAO}
}

// Create inserts a new user.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.dao.Create(ctx, user)
}

// GetByID retrieves a user by their id.
func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.dao.FindByID(ctx, id)
}

// GetByEmail retrieves a user by their email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.dao.FindByEmail(ctx, email)
}

// GetByUsername retrieves a user by their username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.dao.FindByUsername(ctx, username)
}

// GetByExternalID retrieves a user by their external identity provider id.
func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	return r.dao.FindByExternalID(ctx, externalID)
}

// Update modifies an existing user.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.dao.Update(ctx, user)
}

// ExistsByUsername checks if a user with the given username exists.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.dao.ExistsByUsername(ctx, username)
}

// ExistsByEmail checks if a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.dao.ExistsByEmail(ctx, email)
}
