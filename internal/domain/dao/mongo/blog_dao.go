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

// blogDAO implements dao.BlogDAO using MongoDB.
type blogDAO struct {
	*baseMongoDAO[entity.Blog, document.BlogDocument]
	mapper *mapper.BlogMapper
}

// NewBlogDAO creates a new MongoDB-based BlogDAO.
func NewBlogDAO(db *mongo.Database) dao.BlogDAO {
	return &blogDAO{
		baseMongoDAO: newBaseMongoDAO[entity.Blog, document.BlogDocument](
			db,
			document.BlogDocument{}.CollectionName(),
		),
		mapper: mapper.NewBlogMapper(),
	}
}

// Create inserts a new blog and assigns its id.
func (d *blogDAO) Create(ctx context.Context, blog *entity.Blog) error {
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	doc := d.mapper.ToDocument(blog)
	doc.ID = primitive.NewObjectID()
	if doc.Likes == nil {
		doc.Likes = []primitive.ObjectID{}
	}
	if doc.Comments == nil {
		doc.Comments = []document.CommentDocument{}
	}
	if _, err := d.insertOne(ctx, doc); err != nil {
		return err
	}
	blog.ID = doc.ID.Hex()
	return nil
}

// FindByID retrieves a blog by id regardless of status.
func (d *blogDAO) FindByID(ctx context.Context, id string) (*entity.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return d.findOne(ctx, bson.M{"_id": oid})
}

// FindPublishedBySlug retrieves a published blog by slug.
func (d *blogDAO) FindPublishedBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	return d.findOne(ctx, bson.M{"slug": slug, "status": string(entity.BlogStatusPublished)})
}

func (d *blogDAO) findOne(ctx context.Context, filter bson.M) (*entity.Blog, error) {
	var doc document.BlogDocument
	err := d.findOneByFilter(ctx, filter, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// FindPublished lists published blogs matching the filter, newest first.
func (d *blogDAO) FindPublished(ctx context.Context, filter request.BlogFilter, page, size int) ([]*entity.Blog, int64, error) {
	query := bson.M{"status": string(entity.BlogStatusPublished)}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.Search != "" {
		pattern := utils.SearchRegex(filter.Search)
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"content": bson.M{"$regex": pattern, "$options": "i"}},
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

	var docs []*document.BlogDocument
	if err := d.findManyByFilter(ctx, query, opts, &docs); err != nil {
		return nil, 0, err
	}

	return d.mapper.ToEntities(docs), total, nil
}

// FindByAuthor lists a user's blogs regardless of status, newest first.
func (d *blogDAO) FindByAuthor(ctx context.Context, authorID string) ([]*entity.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return []*entity.Blog{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var docs []*document.BlogDocument
	if err := d.findManyByFilter(ctx, bson.M{"author_id": oid}, opts, &docs); err != nil {
		return nil, err
	}
	return d.mapper.ToEntities(docs), nil
}

// Update replaces the mutable fields of a blog. Likes and comments are
// mutated only through their dedicated atomic operations.
func (d *blogDAO) Update(ctx context.Context, blog *entity.Blog) error {
	oid, err := primitive.ObjectIDFromHex(blog.ID)
	if err != nil {
		return err
	}
	blog.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"title":      blog.Title,
		"slug":       blog.Slug,
		"content":    blog.Content,
		"summary":    blog.Summary,
		"category":   string(blog.Category),
		"tags":       blog.Tags,
		"status":     string(blog.Status),
		"updated_at": blog.UpdatedAt,
	}}
	_, _, err = d.updateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

// Delete removes a blog by id.
func (d *blogDAO) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return d.deleteOne(ctx, bson.M{"_id": oid})
}

// ExistsBySlug checks whether another blog already holds the slug.
func (d *blogDAO) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}
	return d.existsByFilter(ctx, filter)
}

// AddLike adds userID to the likes set if absent.
func (d *blogDAO) AddLike(ctx context.Context, blogID, userID string) (bool, bool, error) {
	blogOID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return false, false, nil
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, false, nil
	}

	update := bson.M{"$addToSet": bson.M{"likes": userOID}}
	matched, modified, err := d.updateOne(ctx, bson.M{"_id": blogOID}, update)
	if err != nil {
		return false, false, err
	}
	return matched > 0, modified > 0, nil
}

// RemoveLike removes userID from the likes set if present.
func (d *blogDAO) RemoveLike(ctx context.Context, blogID, userID string) (bool, error) {
	blogOID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return false, nil
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}

	filter := bson.M{"_id": blogOID, "likes": userOID}
	update := bson.M{"$pull": bson.M{"likes": userOID}}
	_, modified, err := d.updateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return modified > 0, nil
}

// CountLikes returns the current size of the likes set.
func (d *blogDAO) CountLikes(ctx context.Context, blogID string) (int, error) {
	blog, err := d.FindByID(ctx, blogID)
	if err != nil {
		return 0, err
	}
	if blog == nil {
		return 0, nil
	}
	return blog.LikeCount(), nil
}

// PushComment appends a comment to a blog.
func (d *blogDAO) PushComment(ctx context.Context, blogID string, comment entity.Comment) (bool, error) {
	blogOID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return false, nil
	}

	doc := document.CommentDocument{
		ID:        primitive.NewObjectID(),
		AuthorID:  objectIDOrNil(comment.AuthorID),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	update := bson.M{"$push": bson.M{"comments": doc}}
	matched, _, err := d.updateOne(ctx, bson.M{"_id": blogOID}, update)
	if err != nil {
		return false, err
	}
	return matched > 0, nil
}

// objectIDOrNil parses a hex id, tolerating empty or malformed input.
func objectIDOrNil(id string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}
