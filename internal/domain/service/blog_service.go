package service

import (
	"context"
	"errors"

	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
)

var (
	// ErrBlogNotFound covers both a missing blog and a blog the caller does
	// not own, so write endpoints do not leak existence.
	ErrBlogNotFound    = errors.New("blog not found")
	ErrBlogSlugTaken   = errors.New("a blog with this title already exists")
	ErrInvalidCategory = errors.New("invalid category")
)

// BlogService defines blog post operations.
type BlogService interface {
	// Create stores a new blog authored by the caller. An omitted status
	// publishes immediately.
	Create(ctx context.Context, authorID string, req *request.CreateBlogRequest) (*response.BlogResponse, error)

	// ListPublished lists published blogs matching the filter, newest first.
	ListPublished(ctx context.Context, filter request.BlogFilter, page, size int) (*response.PagedResponse[response.BlogResponse], error)

	// GetBySlug returns a published blog by slug.
	GetBySlug(ctx context.Context, slug string) (*response.BlogResponse, error)

	// Update applies a partial update to a blog the caller owns. A new
	// title re-derives the slug.
	Update(ctx context.Context, blogID, userID string, req *request.UpdateBlogRequest) (*response.BlogResponse, error)

	// Delete removes a blog the caller owns.
	Delete(ctx context.Context, blogID, userID string) error

	// ToggleLike flips the caller's like on a blog and returns the
	// resulting count and state.
	ToggleLike(ctx context.Context, blogID, userID string) (*response.LikeResponse, error)

	// AddComment appends a comment by the caller and returns the updated blog.
	AddComment(ctx context.Context, blogID, userID string, req *request.AddCommentRequest) (*response.BlogResponse, error)
}
