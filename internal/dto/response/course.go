package response

import (
	"time"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// TopicResponse is an ordered lesson in a course.
type TopicResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// ReviewResponse is a single course review.
type ReviewResponse struct {
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CourseResponse is the public projection of a course. Enrollment is
// exposed as a count only.
type CourseResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	InstructorID  string           `json:"instructor_id"`
	Category      string           `json:"category"`
	Level         string           `json:"level"`
	Price         float64          `json:"price"`
	Topics        []TopicResponse  `json:"topics"`
	Reviews       []ReviewResponse `json:"reviews"`
	EnrolledCount int              `json:"enrolled_count"`
	Rating        float64          `json:"rating"`
	IsPublished   bool             `json:"is_published"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewCourseResponse projects a course entity.
func NewCourseResponse(course *entity.Course) CourseResponse {
	topics := make([]TopicResponse, len(course.Topics))
	for i, t := range course.Topics {
		topics[i] = TopicResponse{Title: t.Title, Content: t.Content, Order: t.Order}
	}
	reviews := make([]ReviewResponse, len(course.Reviews))
	for i, r := range course.Reviews {
		reviews[i] = ReviewResponse{UserID: r.UserID, Rating: r.Rating, Text: r.Text, CreatedAt: r.CreatedAt}
	}
	return CourseResponse{
		ID:            course.ID,
		Title:         course.Title,
		Slug:          course.Slug,
		Description:   course.Description,
		InstructorID:  course.InstructorID,
		Category:      string(course.Category),
		Level:         string(course.Level),
		Price:         course.Price,
		Topics:        topics,
		Reviews:       reviews,
		EnrolledCount: len(course.EnrolledStudents),
		Rating:        course.Rating,
		IsPublished:   course.IsPublished,
		CreatedAt:     course.CreatedAt,
		UpdatedAt:     course.UpdatedAt,
	}
}
