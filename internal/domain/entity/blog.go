package entity

import (
	"time"
)

// BlogStatus gates public visibility of a post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// BlogCategory is the closed set of post categories.
type BlogCategory string

const (
	CategoryWebDevelopment BlogCategory = "Web Development"
	CategoryProgramming    BlogCategory = "Programming"
	CategoryDesign         BlogCategory = "Design"
	CategoryCareer         BlogCategory = "Career"
	CategoryNews           BlogCategory = "News"
)

// ValidBlogCategory reports whether the category is one of the known categories.
func ValidBlogCategory(c BlogCategory) bool {
	switch c {
	case CategoryWebDevelopment, CategoryProgramming, CategoryDesign, CategoryCareer, CategoryNews:
		return true
	}
	return false
}

// Comment is an entry in a blog's append-only comment list.
type Comment struct {
	ID        string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

// Blog represents a blog post with embedded likes and comments.
// Likes is a set of user ids; Comments keep insertion order.
type Blog struct {
	ID        string
	Title     string
	Slug      string
	Content   string
	Summary   string
	Category  BlogCategory
	Tags      []string
	AuthorID  string
	Likes     []string
	Comments  []Comment
	Status    BlogStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPublished reports whether the post is publicly visible.
func (b *Blog) IsPublished() bool {
	return b.Status == BlogStatusPublished
}

// OwnedBy reports whether userID is the post's author. Mutations must pass
// this predicate; callers that fail it are answered with not-found.
func (b *Blog) OwnedBy(userID string) bool {
	return b.AuthorID == userID
}

// LikedBy reports whether userID is in the likes set.
func (b *Blog) LikedBy(userID string) bool {
	for _, id := range b.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// LikeCount returns the number of distinct likes.
func (b *Blog) LikeCount() int {
	return len(b.Likes)
}
