package response

import (
	"time"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// CommentResponse is a single blog comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogResponse is the public projection of a blog post. Likes are exposed
// as a count only.
type BlogResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Slug      string            `json:"slug"`
	Content   string            `json:"content"`
	Summary   string            `json:"summary,omitempty"`
	Category  string            `json:"category"`
	Tags      []string          `json:"tags,omitempty"`
	AuthorID  string            `json:"author_id"`
	LikeCount int               `json:"like_count"`
	Comments  []CommentResponse `json:"comments"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewBlogResponse projects a blog entity.
func NewBlogResponse(blog *entity.Blog) BlogResponse {
	comments := make([]CommentResponse, len(blog.Comments))
	for i, c := range blog.Comments {
		comments[i] = CommentResponse{
			ID:        c.ID,
			AuthorID:  c.AuthorID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
	}
	return BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Slug:      blog.Slug,
		Content:   blog.Content,
		Summary:   blog.Summary,
		Category:  string(blog.Category),
		Tags:      blog.Tags,
		AuthorID:  blog.AuthorID,
		LikeCount: blog.LikeCount(),
		Comments:  comments,
		Status:    string(blog.Status),
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

// LikeResponse is the result of a like toggle: the resulting count and the
// caller's new like state.
type LikeResponse struct {
	LikeCount int  `json:"like_count"`
	Liked     bool `json:"liked"`
}
