package repository

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/dto/request"
)

// BlogRepository defines data access operations for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*entity.Blog, error)
	ListPublished(ctx context.Context, filter request.BlogFilter, page, size int) ([]*entity.Blog, int64, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Blog, error)
	Update(ctx context.Context, blog *entity.Blog) error
	Delete(ctx context.Context, id string) error
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)

	// AddLike reports (matched, modified): matched false means the blog is
	// missing, modified false means the like already existed.
	AddLike(ctx context.Context, blogID, userID string) (bool, bool, error)
	RemoveLike(ctx context.Context, blogID, userID string) (bool, error)
	CountLikes(ctx context.Context, blogID string) (int, error)
	PushComment(ctx context.Context, blogID string, comment entity.Comment) (bool, error)
}
