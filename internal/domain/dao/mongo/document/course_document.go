package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TopicDocument is an embedded ordered lesson inside a course document.
type TopicDocument struct {
	Title   string `bson:"title"`
	Content string `bson:"content"`
	Order   int    `bson:"order"`
}

// ReviewDocument is an embedded review inside a course document.
type ReviewDocument struct {
	UserID    primitive.ObjectID `bson:"user_id"`
	Rating    int                `bson:"rating"`
	Text      string             `bson:"text,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// CourseDocument represents a course in MongoDB. EnrolledStudents is a set
// mutated only through guarded $addToSet; reviews are appended through a
// membership-filtered $push.
type CourseDocument struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	Title            string               `bson:"title"`
	Slug             string               `bson:"slug"`
	Description      string               `bson:"description"`
	InstructorID     primitive.ObjectID   `bson:"instructor_id"`
	Category         string               `bson:"category"`
	Level            string               `bson:"level"`
	Price            float64              `bson:"price"`
	Topics           []TopicDocument      `bson:"topics"`
	Reviews          []ReviewDocument     `bson:"reviews"`
	EnrolledStudents []primitive.ObjectID `bson:"enrolled_students"`
	Rating           float64              `bson:"rating"`
	IsPublished      bool                 `bson:"is_published"`
	CreatedAt        time.Time            `bson:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for courses.
func (CourseDocument) CollectionName() string {
	return "courses"
}
