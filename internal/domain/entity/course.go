package entity

import (
	"time"
)

// CourseCategory is the closed set of course subjects.
type CourseCategory string

const (
	CourseHTML       CourseCategory = "HTML"
	CourseCSS        CourseCategory = "CSS"
	CourseJavaScript CourseCategory = "JavaScript"
	CourseReact      CourseCategory = "React"
	CourseBootstrap  CourseCategory = "Bootstrap"
)

// ValidCourseCategory reports whether the category is one of the known subjects.
func ValidCourseCategory(c CourseCategory) bool {
	switch c {
	case CourseHTML, CourseCSS, CourseJavaScript, CourseReact, CourseBootstrap:
		return true
	}
	return false
}

// CourseLevel is the closed set of difficulty levels.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// ValidCourseLevel reports whether the level is one of the known levels.
func ValidCourseLevel(l CourseLevel) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Topic is an ordered lesson inside a course.
type Topic struct {
	Title   string
	Content string
	Order   int
}

// Review is a rated review left by an enrolled student. At most one per user.
type Review struct {
	UserID    string
	Rating    int
	Text      string
	CreatedAt time.Time
}

// Course represents a course with embedded topics, reviews and the
// enrolled-student set. Rating is the persisted mean of review ratings.
type Course struct {
	ID               string
	Title            string
	Slug             string
	Description      string
	InstructorID     string
	Category         CourseCategory
	Level            CourseLevel
	Price            float64
	Topics           []Topic
	Reviews          []Review
	EnrolledStudents []string
	Rating           float64
	IsPublished      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OwnedBy reports whether userID is the course's instructor.
func (c *Course) OwnedBy(userID string) bool {
	return c.InstructorID == userID
}

// IsEnrolled reports whether userID is in the enrolled-student set.
func (c *Course) IsEnrolled(userID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == userID {
			return true
		}
	}
	return false
}

// ReviewedBy reports whether userID has already left a review.
func (c *Course) ReviewedBy(userID string) bool {
	for _, r := range c.Reviews {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// MeanRating computes the arithmetic mean of review ratings, 0 when there
// are none. The service persists this after every review append.
func MeanRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
