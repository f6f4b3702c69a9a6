package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentDocument is an embedded comment inside a blog document.
type CommentDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID  primitive.ObjectID `bson:"author_id"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
}

// BlogDocument represents a blog post in MongoDB. Likes is a set of user
// ids mutated only through $addToSet/$pull; comments keep insertion order.
type BlogDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Title     string               `bson:"title"`
	Slug      string               `bson:"slug"`
	Content   string               `bson:"content"`
	Summary   string               `bson:"summary,omitempty"`
	Category  string               `bson:"category"`
	Tags      []string             `bson:"tags,omitempty"`
	AuthorID  primitive.ObjectID   `bson:"author_id"`
	Likes     []primitive.ObjectID `bson:"likes"`
	Comments  []CommentDocument    `bson:"comments"`
	Status    string               `bson:"status"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for blogs.
func (BlogDocument) CollectionName() string {
	return "blogs"
}
