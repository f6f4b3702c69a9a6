package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devtutor/devtutor-go/internal/domain/dao"
	"github.com/devtutor/devtutor-go/internal/domain/dao/mongo/document"
	"github.com/devtutor/devtutor-go/internal/domain/dao/mongo/mapper"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/utils"
)

// courseDAO implements dao.CourseDAO using MongoDB.
type courseDAO struct {
	*baseMongoDAO[entity.Course, document.CourseDocument]
	mapper *mapper.CourseMapper
}

// NewCourseDAO creates a new MongoDB-based CourseDAO.
func NewCourseDAO(db *mongo.Database) dao.CourseDAO {
	return &courseDAO{
		baseMongoDAO: newBaseMongoDAO[entity.Course, document.CourseDocument](
			db,
			document.CourseDocument{}.CollectionName(),
		),
		mapper: mapper.NewCourseMapper(),
	}
}

// Create inserts a new course and assigns its id.
func (d *courseDAO) Create(ctx context.Context, course *entity.Course) error {
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	doc := d.mapper.ToDocument(course)
	doc.ID = primitive.NewObjectID()
	if doc.Topics == nil {
		doc.Topics = []document.TopicDocument{}
	}
	if doc.Reviews == nil {
		doc.Reviews = []document.ReviewDocument{}
	}
	if doc.EnrolledStudents == nil {
		doc.EnrolledStudents = []primitive.ObjectID{}
	}
	if _, err := d.insertOne(ctx, doc); err != nil {
		return err
	}
	course.ID = doc.ID.Hex()
	return nil
}

// FindByID retrieves a course by id regardless of visibility.
func (d *courseDAO) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return d.findOne(ctx, bson.M{"_id": oid})
}

// FindPublishedBySlug retrieves a published course by slug.
func (d *courseDAO) FindPublishedBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	return d.findOne(ctx, bson.M{"slug": slug, "is_published": true})
}

func (d *courseDAO) findOne(ctx context.Context, filter bson.M) (*entity.Course, error) {
	var doc document.CourseDocument
	err := d.findOneByFilter(ctx, filter, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// FindPublished lists published courses matching the filter, newest first.
func (d *courseDAO) FindPublished(ctx context.Context, filter request.CourseFilter, page, size int) ([]*entity.Course, int64, error) {
	query := bson.M{"is_published": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Level != "" {
		query["level"] = filter.Level
	}
	if filter.MaxPrice != nil {
		query["price"] = bson.M{"$lte": *filter.MaxPrice}
	}
	if filter.Search != "" {
		pattern := utils.SearchRegex(filter.Search)
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	total, err := d.count(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * size)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(int64(size)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	var docs []*document.CourseDocument
	if err := d.findManyByFilter(ctx, query, opts, &docs); err != nil {
		return nil, 0, err
	}

	return d.mapper.ToEntities(docs), total, nil
}

// FindByInstructor lists an instructor's courses, newest first.
func (d *courseDAO) FindByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error) {
	oid, err := primitive.ObjectIDFromHex(instructorID)
	if err != nil {
		return []*entity.Course{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var docs []*document.CourseDocument
	if err := d.findManyByFilter(ctx, bson.M{"instructor_id": oid}, opts, &docs); err != nil {
		return nil, err
	}
	return d.mapper.ToEntities(docs), nil
}

// Update replaces the mutable fields of a course. Enrollment, reviews and
// rating are mutated only through their dedicated atomic operations.
func (d *courseDAO) Update(ctx context.Context, course *entity.Course) error {
	oid, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return err
	}
	course.UpdatedAt = time.Now()

	topics := make([]document.TopicDocument, 0, len(course.Topics))
	for _, t := range course.Topics {
		topics = append(topics, document.TopicDocument{
			Title:   t.Title,
			Content: t.Content,
			Order:   t.Order,
		})
	}

	update := bson.M{"$set": bson.M{
		"title":        course.Title,
		"slug":         course.Slug,
		"description":  course.Description,
		"category":     string(course.Category),
		"level":        string(course.Level),
		"price":        course.Price,
		"topics":       topics,
		"is_published": course.IsPublished,
		"updated_at":   course.UpdatedAt,
	}}
	_, _, err = d.updateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

// Delete removes a course by id.
func (d *courseDAO) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return d.deleteOne(ctx, bson.M{"_id": oid})
}

// ExistsBySlug checks whether another course already holds the slug.
func (d *courseDAO) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}
	return d.existsByFilter(ctx, filter)
}

// Enroll adds userID to the enrolled set only if absent. The membership
// guard lives in the filter so concurrent enrollments cannot double-add.
func (d *courseDAO) Enroll(ctx context.Context, courseID, userID string) (bool, error) {
	courseOID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return false, nil
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}

	filter := bson.M{"_id": courseOID, "enrolled_students": bson.M{"$ne": userOID}}
	update := bson.M{"$addToSet": bson.M{"enrolled_students": userOID}}
	matched, _, err := d.updateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return matched > 0, nil
}

// PushReview appends a review only when the user is enrolled and has not
// reviewed yet. Guard and append are a single update so concurrent
// submissions cannot produce two reviews from one user.
func (d *courseDAO) PushReview(ctx context.Context, courseID string, review entity.Review) (bool, error) {
	courseOID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return false, nil
	}
	userOID, err := primitive.ObjectIDFromHex(review.UserID)
	if err != nil {
		return false, nil
	}

	filter := bson.M{
		"_id":               courseOID,
		"enrolled_students": userOID,
		"reviews.user_id":   bson.M{"$ne": userOID},
	}
	doc := document.ReviewDocument{
		UserID:    userOID,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
	update := bson.M{"$push": bson.M{"reviews": doc}}
	matched, _, err := d.updateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return matched > 0, nil
}

// SetRating persists the recomputed mean rating.
func (d *courseDAO) SetRating(ctx context.Context, courseID string, rating float64) error {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"rating": rating}}
	_, _, err = d.updateOne(ctx, bson.M{"_id": oid}, update)
	return err
}
