package impl

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/dao"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/dto/request"
)

// courseRepository implements repository.CourseRepository by delegating to CourseDAO.
type courseRepository struct {
	dao dao.CourseDAO
}

// NewCourseRepository creates a new CourseRepository instance.
func NewCourseRepository(courseDAO dao.CourseDAO) repository.CourseRepository {
	return &courseRepository{dao: courseDAO}
}

// Create inserts a new course.
func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	return r.dao.Create(ctx, course)
}

// GetByID retrieves a course by id regardless of visibility.
func (r *courseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	return r.dao.FindByID(ctx, id)
}

// GetPublishedBySlug retrieves a published course by slug.
func (r *courseRepository) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	return r.dao.FindPublishedBySlug(ctx, slug)
}

// ListPublished lists published courses matching the filter with pagination.
func (r *courseRepository) ListPublished(ctx context.Context, filter request.CourseFilter, page, size int) ([]*entity.Course, int64, error) {
	return r.dao.FindPublished(ctx, filter, page, size)
}

// ListByInstructor lists an instructor's courses.
func (r *courseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error) {
	return r.dao.FindByInstructor(ctx, instructorID)
}

// Update modifies an existing course.
func (r *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	return r.dao.Update(ctx, course)
}

// Delete removes a course by id.
func (r *courseRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

// ExistsBySlug checks whether another course already holds the slug.
func (r *courseRepository) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	return r.dao.ExistsBySlug(ctx, slug, excludeID)
}

// Enroll atomically adds a student to the enrolled set.
func (r *courseRepository) Enroll(ctx context.Context, courseID, userID string) (bool, error) {
	return r.dao.Enroll(ctx, courseID, userID)
}

// PushReview appends a review behind the enrollment and uniqueness guard.
func (r *courseRepository) PushReview(ctx context.Context, courseID string, review entity.Review) (bool, error) {
	return r.dao.PushReview(ctx, courseID, review)
}

// SetRating persists the recomputed mean rating.
func (r *courseRepository) SetRating(ctx context.Context, courseID string, rating float64) error {
	return r.dao.SetRating(ctx, courseID, rating)
}
