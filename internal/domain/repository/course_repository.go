package repository

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/dto/request"
)

// CourseRepository defines data access operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*entity.Course, error)
	ListPublished(ctx context.Context, filter request.CourseFilter, page, size int) ([]*entity.Course, int64, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id string) error
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)

	// Enroll reports false when the course is missing or the user is
	// already enrolled; callers disambiguate by re-fetching.
	Enroll(ctx context.Context, courseID, userID string) (bool, error)
	PushReview(ctx context.Context, courseID string, review entity.Review) (bool, error)
	SetRating(ctx context.Context, courseID string, rating float64) error
}
