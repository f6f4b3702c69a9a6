package dao

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/dto/request"
)

// BlogDAO defines database operations for blog posts. Like mutations are
// atomic conditional updates so concurrent toggles cannot lose writes.
type BlogDAO interface {
	// Create inserts a new blog and assigns its id.
	Create(ctx context.Context, blog *entity.Blog) error

	// FindByID retrieves a blog by id, nil when absent.
	FindByID(ctx context.Context, id string) (*entity.Blog, error)

	// FindPublishedBySlug retrieves a published blog by slug, nil when absent.
	FindPublishedBySlug(ctx context.Context, slug string) (*entity.Blog, error)

	// FindPublished lists published blogs matching the filter, newest first.
	FindPublished(ctx context.Context, filter request.BlogFilter, page, size int) ([]*entity.Blog, int64, error)

	// FindByAuthor lists a user's blogs regardless of status, newest first.
	FindByAuthor(ctx context.Context, authorID string) ([]*entity.Blog, error)

	// Update replaces the mutable fields of the stored blog document.
	Update(ctx context.Context, blog *entity.Blog) error

	// Delete removes a blog by id.
	Delete(ctx context.Context, id string) error

	// ExistsBySlug checks whether another blog already holds the slug.
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)

	// AddLike atomically adds userID to the likes set if absent. Returns
	// (matched, modified): matched is false when the blog does not exist,
	// modified is false when the user had already liked it.
	AddLike(ctx context.Context, blogID, userID string) (matched, modified bool, err error)

	// RemoveLike atomically removes userID from the likes set. Returns
	// whether a like was actually removed.
	RemoveLike(ctx context.Context, blogID, userID string) (bool, error)

	// CountLikes returns the current size of the likes set.
	CountLikes(ctx context.Context, blogID string) (int, error)

	// PushComment appends a comment. Returns false when the blog does not exist.
	PushComment(ctx context.Context, blogID string, comment entity.Comment) (bool, error)
}
