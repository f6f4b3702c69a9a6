package impl

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/dao"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/dto/request"
)

// blogRepository implements repository.BlogRepository by delegating to BlogDAO.
type blogRepository struct {
	dao dao.BlogDAO
}

// NewBlogRepository creates a new BlogRepository instance.
func NewBlogRepository(blogDAO dao.BlogDAO) repository.BlogRepository {
	return &blogRepository{dao: blogDAO}
}

// Create inserts a new blog.
func (r *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	return r.dao.Create(ctx, blog)
}

// GetByID retrieves a blog by id regardless of status.
func (r *blogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	return r.dao.FindByID(ctx, id)
}

// GetPublishedBySlug retrieves a published blog by slug.
func (r *blogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	return r.dao.FindPublishedBySlug(ctx, slug)
}

// ListPublished lists published blogs matching the filter with pagination.
func (r *blogRepository) ListPublished(ctx context.Context, filter request.BlogFilter, page, size int) ([]*entity.Blog, int64, error) {
	return r.dao.FindPublished(ctx, filter, page, size)
}

// ListByAuthor lists a user's blogs regardless of status.
func (r *blogRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Blog, error) {
	return r.dao.FindByAuthor(ctx, authorID)
}

// Update modifies an existing blog.
func (r *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	return r.dao.Update(ctx, blog)
}

// Delete removes a blog by id.
func (r *blogRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

// ExistsBySlug checks whether another blog already holds the slug.
func (r *blogRepository) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	return r.dao.ExistsBySlug(ctx, slug, excludeID)
}

// AddLike atomically adds a like.
func (r *blogRepository) AddLike(ctx context.Context, blogID, userID string) (bool, bool, error) {
	return r.dao.AddLike(ctx, blogID, userID)
}

// RemoveLike atomically removes a like.
func (r *blogRepository) RemoveLike(ctx context.Context, blogID, userID string) (bool, error) {
	return r.dao.RemoveLike(ctx, blogID, userID)
}

// CountLikes returns the current size of the likes set.
func (r *blogRepository) CountLikes(ctx context.Context, blogID string) (int, error) {
	return r.dao.CountLikes(ctx, blogID)
}

// PushComment appends a comment.
func (r *blogRepository) PushComment(ctx context.Context, blogID string, comment entity.Comment) (bool, error) {
	return r.dao.PushComment(ctx, blogID, comment)
}
