package service

import (
	"context"
	"errors"

	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
)

var (
	// ErrCourseNotFound covers both a missing course and a course the
	// caller does not own, so write endpoints do not leak existence.
	ErrCourseNotFound  = errors.New("course not found")
	ErrCourseSlugTaken = errors.New("a course with this title already exists")
	ErrInvalidLevel    = errors.New("invalid level")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	ErrNotEnrolled     = errors.New("not enrolled in this course")
	ErrAlreadyReviewed = errors.New("course already reviewed")
)

// CourseService defines course catalog operations.
type CourseService interface {
	// Create stores a new course taught by the caller. An omitted
	// published flag publishes immediately.
	Create(ctx context.Context, instructorID string, req *request.CreateCourseRequest) (*response.CourseResponse, error)

	// ListPublished lists published courses matching the filter, newest first.
	ListPublished(ctx context.Context, filter request.CourseFilter, page, size int) (*response.PagedResponse[response.CourseResponse], error)

	// GetBySlug returns a published course by slug.
	GetBySlug(ctx context.Context, slug string) (*response.CourseResponse, error)

	// Update applies a partial update to a course the caller owns. A new
	// title re-derives the slug.
	Update(ctx context.Context, courseID, userID string, req *request.UpdateCourseRequest) (*response.CourseResponse, error)

	// Delete removes a course the caller owns.
	Delete(ctx context.Context, courseID, userID string) error

	// Enroll adds the caller to the course's student set.
	Enroll(ctx context.Context, courseID, userID string) (*response.CourseResponse, error)

	// AddReview appends the caller's review. The caller must be enrolled
	// and may review each course once; the mean rating is recomputed.
	AddReview(ctx context.Context, courseID, userID string, req *request.AddReviewRequest) (*response.CourseResponse, error)
}
