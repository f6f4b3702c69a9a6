package impl

import (
	"context"
	"time"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/utils"
)

// courseService implements service.CourseService
type courseService struct {
	courseRepo repository.CourseRepository
}

// NewCourseService creates a new CourseService instance
func NewCourseService(courseRepo repository.CourseRepository) service.CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) Create(ctx context.Context, instructorID string, req *request.CreateCourseRequest) (*response.CourseResponse, error) {
	category := entity.CourseCategory(req.Category)
	if !entity.ValidCourseCategory(category) {
		return nil, service.ErrInvalidCategory
	}
	level := entity.CourseLevel(req.Level)
	if !entity.ValidCourseLevel(level) {
		return nil, service.ErrInvalidLevel
	}

	slug := utils.Slugify(req.Title)
	taken, err := s.courseRepo.ExistsBySlug(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, service.ErrCourseSlugTaken
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	course := &entity.Course{
		Title:        req.Title,
		Slug:         slug,
		Description:  req.Description,
		InstructorID: instructorID,
		Category:     category,
		Level:        level,
		Price:        req.Price,
		Topics:       topicsFromRequest(req.Topics),
		IsPublished:  published,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	resp := response.NewCourseResponse(course)
	return &resp, nil
}

func (s *courseService) ListPublished(ctx context.Context, filter request.CourseFilter, page, size int) (*response.PagedResponse[response.CourseResponse], error) {
	courses, total, err := s.courseRepo.ListPublished(ctx, filter, page, size)
	if err != nil {
		return nil, err
	}

	items := make([]response.CourseResponse, len(courses))
	for i, c := range courses {
		items[i] = response.NewCourseResponse(c)
	}

	paged := response.NewPagedResponse(items, page, size, total)
	return &paged, nil
}

func (s *courseService) GetBySlug(ctx context.Context, slug string) (*response.CourseResponse, error) {
	course, err := s.courseRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, service.ErrCourseNotFound
	}

	resp := response.NewCourseResponse(course)
	return &resp, nil
}

func (s *courseService) Update(ctx context.Context, courseID, userID string, req *request.UpdateCourseRequest) (*response.CourseResponse, error) {
	course, err := s.ownedCourse(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" && req.Title != course.Title {
		slug := utils.Slugify(req.Title)
		taken, err := s.courseRepo.ExistsBySlug(ctx, slug, course.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, service.ErrCourseSlugTaken
		}
		course.Title = req.Title
		course.Slug = slug
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Category != "" {
		category := entity.CourseCategory(req.Category)
		if !entity.ValidCourseCategory(category) {
			return nil, service.ErrInvalidCategory
		}
		course.Category = category
	}
	if req.Level != "" {
		level := entity.CourseLevel(req.Level)
		if !entity.ValidCourseLevel(level) {
			return nil, service.ErrInvalidLevel
		}
		course.Level = level
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Topics != nil {
		course.Topics = topicsFromRequest(req.Topics)
	}
	if req.Published != nil {
		course.IsPublished = *req.Published
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	resp := response.NewCourseResponse(course)
	return &resp, nil
}

func (s *courseService) Delete(ctx context.Context, courseID, userID string) error {
	if _, err := s.ownedCourse(ctx, courseID, userID); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, courseID)
}

func (s *courseService) Enroll(ctx context.Context, courseID, userID string) (*response.CourseResponse, error) {
	matched, err := s.courseRepo.Enroll(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}

	// A non-match means the course is missing or the user is already in
	// the set; a re-fetch tells the two apart.
	if !matched {
		course, err := s.courseRepo.GetByID(ctx, courseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, service.ErrCourseNotFound
		}
		return nil, service.ErrAlreadyEnrolled
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, service.ErrCourseNotFound
	}

	resp := response.NewCourseResponse(course)
	return &resp, nil
}

func (s *courseService) AddReview(ctx context.Context, courseID, userID string, req *request.AddReviewRequest) (*response.CourseResponse, error) {
	review := entity.Review{
		UserID:    userID,
		Rating:    req.Rating,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	matched, err := s.courseRepo.PushReview(ctx, courseID, review)
	if err != nil {
		return nil, err
	}

	if !matched {
		course, err := s.courseRepo.GetByID(ctx, courseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, service.ErrCourseNotFound
		}
		if !course.IsEnrolled(userID) {
			return nil, service.ErrNotEnrolled
		}
		return nil, service.ErrAlreadyReviewed
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, service.ErrCourseNotFound
	}

	// Recompute and persist the mean. Concurrent reviews may briefly leave
	// the stored value one review behind; the next write converges it.
	rating := entity.MeanRating(course.Reviews)
	if err := s.courseRepo.SetRating(ctx, courseID, rating); err != nil {
		return nil, err
	}
	course.Rating = rating

	resp := response.NewCourseResponse(course)
	return &resp, nil
}

// ownedCourse loads a course and checks ownership. Missing and not-owned
// courses are indistinguishable to the caller.
func (s *courseService) ownedCourse(ctx context.Context, courseID, userID string) (*entity.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil || !course.OwnedBy(userID) {
		return nil, service.ErrCourseNotFound
	}
	return course, nil
}

func topicsFromRequest(reqs []request.TopicRequest) []entity.Topic {
	topics := make([]entity.Topic, len(reqs))
	for i, t := range reqs {
		topics[i] = entity.Topic{Title: t.Title, Content: t.Content, Order: t.Order}
	}
	return topics
}
