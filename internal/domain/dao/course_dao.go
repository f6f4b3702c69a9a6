package dao

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/dto/request"
)

// CourseDAO defines database operations for courses. Enrollment and review
// appends are atomic conditional updates guarded by set-membership filters.
type CourseDAO interface {
	// Create inserts a new course and assigns its id.
	Create(ctx context.Context, course *entity.Course) error

	// FindByID retrieves a course by id, nil when absent.
	FindByID(ctx context.Context, id string) (*entity.Course, error)

	// FindPublishedBySlug retrieves a published course by slug, nil when absent.
	FindPublishedBySlug(ctx context.Context, slug string) (*entity.Course, error)

	// FindPublished lists published courses matching the filter, newest first.
	FindPublished(ctx context.Context, filter request.CourseFilter, page, size int) ([]*entity.Course, int64, error)

	// FindByInstructor lists an instructor's courses regardless of
	// visibility, newest first.
	FindByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error)

	// Update replaces the mutable fields of the stored course document.
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes a course by id.
	Delete(ctx context.Context, id string) error

	// ExistsBySlug checks whether another course already holds the slug.
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)

	// Enroll atomically adds userID to the enrolled set if absent. Matched
	// is false when the course is missing or the user is already enrolled;
	// callers disambiguate by re-fetching.
	Enroll(ctx context.Context, courseID, userID string) (bool, error)

	// PushReview appends a review only when userID is enrolled and has not
	// reviewed yet; the guard and the append are a single update.
	PushReview(ctx context.Context, courseID string, review entity.Review) (bool, error)

	// SetRating persists the recomputed mean rating.
	SetRating(ctx context.Context, courseID string, rating float64) error
}
