// Package mocks provides in-memory repository implementations for tests.
package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/dto/request"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu     sync.RWMutex
	users  map[string]*entity.User
	nextID int

	// Error injection
	CreateErr          error
	GetByIDErr         error
	GetByEmailErr      error
	GetByUsernameErr   error
	GetByExternalIDErr error
	UpdateErr          error
	ExistsErr          error
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[string]*entity.User),
		nextID: 1,
	}
}

func (r *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = user
	return nil
}

func (r *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, nil
}

func (r *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.GetByEmailErr != nil {
		return nil, r.GetByEmailErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if r.GetByUsernameErr != nil {
		return nil, r.GetByUsernameErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (r *MockUserRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	if r.GetByExternalIDErr != nil {
		return nil, r.GetByExternalIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ExternalID == externalID {
			return user, nil
		}
	}
	return nil, nil
}

func (r *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		user.UpdatedAt = time.Now()
		r.users[user.ID] = user
	}
	return nil
}

func (r *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if r.ExistsErr != nil {
		return false, r.ExistsErr
	}
	user, _ := r.GetByUsername(ctx, username)
	return user != nil, nil
}

func (r *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.ExistsErr != nil {
		return false, r.ExistsErr
	}
	user, _ := r.GetByEmail(ctx, email)
	return user != nil, nil
}

// AddUser seeds a user directly, assigning an id when absent.
func (r *MockUserRepository) AddUser(user *entity.User) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.nextID)
		r.nextID++
	}
	r.users[user.ID] = user
	return user
}

// Count returns the number of stored users.
func (r *MockUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// MockRefreshTokenRepository is a mock implementation of RefreshTokenRepository
type MockRefreshTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*entity.RefreshToken
	nextID int

	// Error injection
	CreateErr        error
	GetByTokenErr    error
	RevokeErr        error
	DeleteExpiredErr error
}

var _ repository.RefreshTokenRepository = (*MockRefreshTokenRepository)(nil)

func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{
		tokens: make(map[string]*entity.RefreshToken),
		nextID: 1,
	}
}

func (r *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	token.ID = fmt.Sprintf("token-%d", r.nextID)
	r.nextID++
	token.CreatedAt = time.Now()
	r.tokens[token.Token] = token
	return nil
}

func (r *MockRefreshTokenRepository) GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	if r.GetByTokenErr != nil {
		return nil, r.GetByTokenErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rt, ok := r.tokens[token]; ok {
		return rt, nil
	}
	return nil, nil
}

func (r *MockRefreshTokenRepository) RevokeByToken(ctx context.Context, token string) error {
	if r.RevokeErr != nil {
		return r.RevokeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if rt, ok := r.tokens[token]; ok {
		rt.Revoked = true
	}
	return nil
}

func (r *MockRefreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID string) error {
	if r.RevokeErr != nil {
		return r.RevokeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range r.tokens {
		if rt.UserID == userID {
			rt.Revoked = true
		}
	}
	return nil
}

func (r *MockRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if r.DeleteExpiredErr != nil {
		return 0, r.DeleteExpiredErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	now := time.Now()
	for key, rt := range r.tokens {
		if rt.ExpiresAt.Before(now) {
			delete(r.tokens, key)
			deleted++
		}
	}
	return deleted, nil
}

// ActiveCount returns the number of unrevoked tokens for a user.
func (r *MockRefreshTokenRepository) ActiveCount(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, rt := range r.tokens {
		if rt.UserID == userID && !rt.Revoked {
			count++
		}
	}
	return count
}

// MockBlogRepository is a mock implementation of BlogRepository
type MockBlogRepository struct {
	mu     sync.RWMutex
	blogs  map[string]*entity.Blog
	nextID int

	// Error injection
	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
	LikeErr   error
}

var _ repository.BlogRepository = (*MockBlogRepository)(nil)

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		blogs:  make(map[string]*entity.Blog),
		nextID: 1,
	}
}

func (r *MockBlogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	blog.ID = fmt.Sprintf("blog-%d", r.nextID)
	r.nextID++
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	r.blogs[blog.ID] = blog
	return nil
}

func (r *MockBlogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if blog, ok := r.blogs[id]; ok {
		return blog, nil
	}
	return nil, nil
}

func (r *MockBlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, blog := range r.blogs {
		if blog.Slug == slug && blog.IsPublished() {
			return blog, nil
		}
	}
	return nil, nil
}

func (r *MockBlogRepository) ListPublished(ctx context.Context, filter request.BlogFilter, page, size int) ([]*entity.Blog, int64, error) {
	if r.ListErr != nil {
		return nil, 0, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Blog
	for _, blog := range r.blogs {
		if !blog.IsPublished() {
			continue
		}
		if filter.Category != "" && string(blog.Category) != filter.Category {
			continue
		}
		if len(filter.Tags) > 0 && !hasAnyTag(blog.Tags, filter.Tags) {
			continue
		}
		if filter.Search != "" && !containsFold(blog.Title, filter.Search) && !containsFold(blog.Content, filter.Search) {
			continue
		}
		matched = append(matched, blog)
	}
	total := int64(len(matched))
	return paginate(matched, page, size), total, nil
}

func (r *MockBlogRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Blog, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var blogs []*entity.Blog
	for _, blog := range r.blogs {
		if blog.AuthorID == authorID {
			blogs = append(blogs, blog)
		}
	}
	return blogs, nil
}

func (r *MockBlogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.blogs[blog.ID]; ok {
		blog.Likes = stored.Likes
		blog.Comments = stored.Comments
		blog.UpdatedAt = time.Now()
		r.blogs[blog.ID] = blog
	}
	return nil
}

func (r *MockBlogRepository) Delete(ctx context.Context, id string) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blogs, id)
	return nil
}

func (r *MockBlogRepository) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	if r.GetErr != nil {
		return false, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, blog := range r.blogs {
		if blog.Slug == slug && blog.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MockBlogRepository) AddLike(ctx context.Context, blogID, userID string) (bool, bool, error) {
	if r.LikeErr != nil {
		return false, false, r.LikeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	blog, ok := r.blogs[blogID]
	if !ok {
		return false, false, nil
	}
	if blog.LikedBy(userID) {
		return true, false, nil
	}
	blog.Likes = append(blog.Likes, userID)
	return true, true, nil
}

func (r *MockBlogRepository) RemoveLike(ctx context.Context, blogID, userID string) (bool, error) {
	if r.LikeErr != nil {
		return false, r.LikeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	blog, ok := r.blogs[blogID]
	if !ok {
		return false, nil
	}
	for i, id := range blog.Likes {
		if id == userID {
			blog.Likes = append(blog.Likes[:i], blog.Likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MockBlogRepository) CountLikes(ctx context.Context, blogID string) (int, error) {
	if r.LikeErr != nil {
		return 0, r.LikeErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if blog, ok := r.blogs[blogID]; ok {
		return blog.LikeCount(), nil
	}
	return 0, nil
}

func (r *MockBlogRepository) PushComment(ctx context.Context, blogID string, comment entity.Comment) (bool, error) {
	if r.UpdateErr != nil {
		return false, r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	blog, ok := r.blogs[blogID]
	if !ok {
		return false, nil
	}
	comment.ID = fmt.Sprintf("comment-%d", len(blog.Comments)+1)
	comment.CreatedAt = time.Now()
	blog.Comments = append(blog.Comments, comment)
	return true, nil
}

// AddBlog seeds a blog directly, assigning an id when absent.
func (r *MockBlogRepository) AddBlog(blog *entity.Blog) *entity.Blog {
	r.mu.Lock()
	defer r.mu.Unlock()
	if blog.ID == "" {
		blog.ID = fmt.Sprintf("blog-%d", r.nextID)
		r.nextID++
	}
	r.blogs[blog.ID] = blog
	return blog
}

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	mu      sync.RWMutex
	courses map[string]*entity.Course
	nextID  int

	// Error injection
	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
	EnrollErr error
}

var _ repository.CourseRepository = (*MockCourseRepository)(nil)

func NewMockCourseRepository() *MockCourseRepository {
	return &MockCourseRepository{
		courses: make(map[string]*entity.Course),
		nextID:  1,
	}
}

func (r *MockCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	course.ID = fmt.Sprintf("course-%d", r.nextID)
	r.nextID++
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	r.courses[course.ID] = course
	return nil
}

func (r *MockCourseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if course, ok := r.courses[id]; ok {
		return course, nil
	}
	return nil, nil
}

func (r *MockCourseRepository) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, course := range r.courses {
		if course.Slug == slug && course.IsPublished {
			return course, nil
		}
	}
	return nil, nil
}

func (r *MockCourseRepository) ListPublished(ctx context.Context, filter request.CourseFilter, page, size int) ([]*entity.Course, int64, error) {
	if r.ListErr != nil {
		return nil, 0, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Course
	for _, course := range r.courses {
		if !course.IsPublished {
			continue
		}
		if filter.Category != "" && string(course.Category) != filter.Category {
			continue
		}
		if filter.Level != "" && string(course.Level) != filter.Level {
			continue
		}
		if filter.MaxPrice != nil && course.Price > *filter.MaxPrice {
			continue
		}
		if filter.Search != "" && !containsFold(course.Title, filter.Search) && !containsFold(course.Description, filter.Search) {
			continue
		}
		matched = append(matched, course)
	}
	total := int64(len(matched))
	return paginate(matched, page, size), total, nil
}

func (r *MockCourseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var courses []*entity.Course
	for _, course := range r.courses {
		if course.InstructorID == instructorID {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (r *MockCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.courses[course.ID]; ok {
		course.Reviews = stored.Reviews
		course.EnrolledStudents = stored.EnrolledStudents
		course.Rating = stored.Rating
		course.UpdatedAt = time.Now()
		r.courses[course.ID] = course
	}
	return nil
}

func (r *MockCourseRepository) Delete(ctx context.Context, id string) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.courses, id)
	return nil
}

func (r *MockCourseRepository) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	if r.GetErr != nil {
		return false, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, course := range r.courses {
		if course.Slug == slug && course.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MockCourseRepository) Enroll(ctx context.Context, courseID, userID string) (bool, error) {
	if r.EnrollErr != nil {
		return false, r.EnrollErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	course, ok := r.courses[courseID]
	if !ok || course.IsEnrolled(userID) {
		return false, nil
	}
	course.EnrolledStudents = append(course.EnrolledStudents, userID)
	return true, nil
}

func (r *MockCourseRepository) PushReview(ctx context.Context, courseID string, review entity.Review) (bool, error) {
	if r.EnrollErr != nil {
		return false, r.EnrollErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	course, ok := r.courses[courseID]
	if !ok || !course.IsEnrolled(review.UserID) || course.ReviewedBy(review.UserID) {
		return false, nil
	}
	review.CreatedAt = time.Now()
	course.Reviews = append(course.Reviews, review)
	return true, nil
}

func (r *MockCourseRepository) SetRating(ctx context.Context, courseID string, rating float64) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if course, ok := r.courses[courseID]; ok {
		course.Rating = rating
	}
	return nil
}

// AddCourse seeds a course directly, assigning an id when absent.
func (r *MockCourseRepository) AddCourse(course *entity.Course) *entity.Course {
	r.mu.Lock()
	defer r.mu.Unlock()
	if course.ID == "" {
		course.ID = fmt.Sprintf("course-%d", r.nextID)
		r.nextID++
	}
	r.courses[course.ID] = course
	return course
}

// MockWebhookEventRepository is a mock implementation of WebhookEventRepository
type MockWebhookEventRepository struct {
	mu   sync.Mutex
	seen map[string]bool

	// Error injection
	MarkProcessedErr error
}

var _ repository.WebhookEventRepository = (*MockWebhookEventRepository)(nil)

func NewMockWebhookEventRepository() *MockWebhookEventRepository {
	return &MockWebhookEventRepository{seen: make(map[string]bool)}
}

func (r *MockWebhookEventRepository) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	if r.MarkProcessedErr != nil {
		return false, r.MarkProcessedErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen[eventID] {
		return false, nil
	}
	r.seen[eventID] = true
	return true, nil
}

func (r *MockWebhookEventRepository) ClearProcessed(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.seen, eventID)
	return nil
}

// Seen reports whether an event id is currently marked.
func (r *MockWebhookEventRepository) Seen(eventID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seen[eventID]
}

func hasAnyTag(tags, wanted []string) bool {
	for _, t := range tags {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func paginate[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
