package mapper

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devtutor/devtutor-go/internal/domain/dao/mongo/document"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// CourseMapper converts between Course entity and CourseDocument.
type CourseMapper struct{}

// NewCourseMapper creates a new CourseMapper instance.
func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

// ToDocument converts a Course entity to a CourseDocument.
func (m *CourseMapper) ToDocument(course *entity.Course) *document.CourseDocument {
	if course == nil {
		return nil
	}

	topics := make([]document.TopicDocument, 0, len(course.Topics))
	for _, t := range course.Topics {
		topics = append(topics, document.TopicDocument{
			Title:   t.Title,
			Content: t.Content,
			Order:   t.Order,
		})
	}

	reviews := make([]document.ReviewDocument, 0, len(course.Reviews))
	for _, r := range course.Reviews {
		reviews = append(reviews, document.ReviewDocument{
			UserID:    objectIDFromHex(r.UserID),
			Rating:    r.Rating,
			Text:      r.Text,
			CreatedAt: r.CreatedAt,
		})
	}

	enrolled := make([]primitive.ObjectID, 0, len(course.EnrolledStudents))
	for _, id := range course.EnrolledStudents {
		enrolled = append(enrolled, objectIDFromHex(id))
	}

	return &document.CourseDocument{
		ID:               objectIDFromHex(course.ID),
		Title:            course.Title,
		Slug:             course.Slug,
		Description:      course.Description,
		InstructorID:     objectIDFromHex(course.InstructorID),
		Category:         string(course.Category),
		Level:            string(course.Level),
		Price:            course.Price,
		Topics:           topics,
		Reviews:          reviews,
		EnrolledStudents: enrolled,
		Rating:           course.Rating,
		IsPublished:      course.IsPublished,
		CreatedAt:        course.CreatedAt,
		UpdatedAt:        course.UpdatedAt,
	}
}

// ToEntity converts a CourseDocument to a Course entity.
func (m *CourseMapper) ToEntity(doc *document.CourseDocument) *entity.Course {
	if doc == nil {
		return nil
	}

	topics := make([]entity.Topic, 0, len(doc.Topics))
	for _, t := range doc.Topics {
		topics = append(topics, entity.Topic{
			Title:   t.Title,
			Content: t.Content,
			Order:   t.Order,
		})
	}

	reviews := make([]entity.Review, 0, len(doc.Reviews))
	for _, r := range doc.Reviews {
		reviews = append(reviews, entity.Review{
			UserID:    hexFromObjectID(r.UserID),
			Rating:    r.Rating,
			Text:      r.Text,
			CreatedAt: r.CreatedAt,
		})
	}

	enrolled := make([]string, 0, len(doc.EnrolledStudents))
	for _, oid := range doc.EnrolledStudents {
		enrolled = append(enrolled, hexFromObjectID(oid))
	}

	return &entity.Course{
		ID:               hexFromObjectID(doc.ID),
		Title:            doc.Title,
		Slug:             doc.Slug,
		Description:      doc.Description,
		InstructorID:     hexFromObjectID(doc.InstructorID),
		Category:         entity.CourseCategory(doc.Category),
		Level:            entity.CourseLevel(doc.Level),
		Price:            doc.Price,
		Topics:           topics,
		Reviews:          reviews,
		EnrolledStudents: enrolled,
		Rating:           doc.Rating,
		IsPublished:      doc.IsPublished,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
}

// ToEntities converts a slice of CourseDocuments to Course entities.
func (m *CourseMapper) ToEntities(docs []*document.CourseDocument) []*entity.Course {
	courses := make([]*entity.Course, 0, len(docs))
	for _, doc := range docs {
		courses = append(courses, m.ToEntity(doc))
	}
	return courses
}
