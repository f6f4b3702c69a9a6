package request

// TopicRequest is an ordered lesson in a course create/update request.
type TopicRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
	Order   int    `json:"order" binding:"min=0"`
}

// CreateCourseRequest represents a course creation request. The instructor
// is the authenticated caller. An omitted published flag publishes the
// course immediately.
type CreateCourseRequest struct {
	Title       string         `json:"title" binding:"required,min=3,max=200"`
	Description string         `json:"description" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Level       string         `json:"level" binding:"required"`
	Price       float64        `json:"price" binding:"min=0"`
	Topics      []TopicRequest `json:"topics,omitempty" binding:"dive"`
	Published   *bool          `json:"published,omitempty"`
}

// UpdateCourseRequest represents a partial course update.
type UpdateCourseRequest struct {
	Title       string         `json:"title,omitempty" binding:"omitempty,min=3,max=200"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty"`
	Level       string         `json:"level,omitempty"`
	Price       *float64       `json:"price,omitempty" binding:"omitempty,min=0"`
	Topics      []TopicRequest `json:"topics,omitempty" binding:"dive"`
	Published   *bool          `json:"published,omitempty"`
}

// AddReviewRequest represents a review append request. Enrollment is
// checked server-side.
type AddReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text,omitempty" binding:"max=2000"`
}

// CourseFilter carries the public listing filters. MaxPrice is a ceiling
// (price <= MaxPrice) when set.
type CourseFilter struct {
	Category string
	Level    string
	MaxPrice *float64
	Search   string
}
