package request

// CreateBlogRequest represents a blog creation request. The author is taken
// from the authenticated identity, never from the body. An omitted status
// publishes the post immediately.
type CreateBlogRequest struct {
	Title    string   `json:"title" binding:"required,min=3,max=200"`
	Content  string   `json:"content" binding:"required"`
	Summary  string   `json:"summary,omitempty" binding:"max=500"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags,omitempty"`
	Status   string   `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
}

// UpdateBlogRequest represents a partial blog update. A new title re-derives
// the slug.
type UpdateBlogRequest struct {
	Title    string   `json:"title,omitempty" binding:"omitempty,min=3,max=200"`
	Content  string   `json:"content,omitempty"`
	Summary  string   `json:"summary,omitempty" binding:"max=500"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Status   string   `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
}

// AddCommentRequest represents a comment append request
type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// BlogFilter carries the public listing filters.
type BlogFilter struct {
	Category string
	Tags     []string
	Search   string
}
