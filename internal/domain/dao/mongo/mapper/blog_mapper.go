package mapper

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devtutor/devtutor-go/internal/domain/dao/mongo/document"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// BlogMapper converts between Blog entity and BlogDocument.
type BlogMapper struct{}

// NewBlogMapper creates a new BlogMapper instance.
func NewBlogMapper() *BlogMapper {
	return &BlogMapper{}
}

// ToDocument converts a Blog entity to a BlogDocument.
func (m *BlogMapper) ToDocument(blog *entity.Blog) *document.BlogDocument {
	if blog == nil {
		return nil
	}

	likes := make([]primitive.ObjectID, 0, len(blog.Likes))
	for _, id := range blog.Likes {
		likes = append(likes, objectIDFromHex(id))
	}

	comments := make([]document.CommentDocument, 0, len(blog.Comments))
	for _, c := range blog.Comments {
		comments = append(comments, document.CommentDocument{
			ID:        objectIDFromHex(c.ID),
			AuthorID:  objectIDFromHex(c.AuthorID),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}

	return &document.BlogDocument{
		ID:        objectIDFromHex(blog.ID),
		Title:     blog.Title,
		Slug:      blog.Slug,
		Content:   blog.Content,
		Summary:   blog.Summary,
		Category:  string(blog.Category),
		Tags:      blog.Tags,
		AuthorID:  objectIDFromHex(blog.AuthorID),
		Likes:     likes,
		Comments:  comments,
		Status:    string(blog.Status),
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

// ToEntity converts a BlogDocument to a Blog entity.
func (m *BlogMapper) ToEntity(doc *document.BlogDocument) *entity.Blog {
	if doc == nil {
		return nil
	}

	likes := make([]string, 0, len(doc.Likes))
	for _, oid := range doc.Likes {
		likes = append(likes, hexFromObjectID(oid))
	}

	comments := make([]entity.Comment, 0, len(doc.Comments))
	for _, c := range doc.Comments {
		comments = append(comments, entity.Comment{
			ID:        hexFromObjectID(c.ID),
			AuthorID:  hexFromObjectID(c.AuthorID),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}

	return &entity.Blog{
		ID:        hexFromObjectID(doc.ID),
		Title:     doc.Title,
		Slug:      doc.Slug,
		Content:   doc.Content,
		Summary:   doc.Summary,
		Category:  entity.BlogCategory(doc.Category),
		Tags:      doc.Tags,
		AuthorID:  hexFromObjectID(doc.AuthorID),
		Likes:     likes,
		Comments:  comments,
		Status:    entity.BlogStatus(doc.Status),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// ToEntities converts a slice of BlogDocuments to Blog entities.
func (m *BlogMapper) ToEntities(docs []*document.BlogDocument) []*entity.Blog {
	blogs := make([]*entity.Blog, 0, len(docs))
	for _, doc := range docs {
		blogs = append(blogs, m.ToEntity(doc))
	}
	return blogs
}
