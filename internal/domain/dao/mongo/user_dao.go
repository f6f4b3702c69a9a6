package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devtutor/devtutor-go/internal/domain/dao"
	"github.com/devtutor/devtutor-go/internal/domain/dao/mongo/document"
	"github.com/devtutor/devtutor-go/internal/domain/dao/mongo/mapper"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// userDAO implements dao.UserDAO using MongoDB.
type userDAO struct {
	*baseMongoDAO[entity.User, document.UserDocument]
	mapper *mapper.UserMapper
}

// NewUserDAO creates a new MongoDB-based UserDAO.
func NewUserDAO(db *mongo.Database) dao.UserDAO {
	return &userDAO{
		baseMongoDAO: newBaseMongoDAO[entity.User, document.UserDocument](
			db,
			document.UserDocument{}.CollectionName(),
		),
		mapper: mapper.NewUserMapper(),
	}
}

// Create inserts a new user into MongoDB and assigns its id.
func (d *userDAO) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc := d.mapper.ToDocument(user)
	doc.ID = primitive.NewObjectID()
	if _, err := d.insertOne(ctx, doc); err != nil {
		return err
	}
	user.ID = doc.ID.Hex()
	return nil
}

// FindByID retrieves a user by id.
func (d *userDAO) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return d.findOne(ctx, bson.M{"_id": oid})
}

// FindByEmail retrieves a user by their email.
func (d *userDAO) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return d.findOne(ctx, bson.M{"email": email})
}

// FindByUsername retrieves a user by their username.
func (d *userDAO) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return d.findOne(ctx, bson.M{"username": username})
}

// FindByExternalID retrieves a user by the id assigned by the external
// identity provider.
func (d *userDAO) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	return d.findOne(ctx, bson.M{"external_id": externalID})
}

func (d *userDAO) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc document.UserDocument
	err := d.findOneByFilter(ctx, filter, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// Update modifies the mutable fields of an existing user.
func (d *userDAO) Update(ctx context.Context, user *entity.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return err
	}
	user.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"username":    user.Username,
		"email":       user.Email,
		"password":    user.Password,
		"role":        string(user.Role),
		"bio":         user.Bio,
		"picture":     user.Picture,
		"phone":       user.Phone,
		"external_id": user.ExternalID,
		"updated_at":  user.UpdatedAt,
	}}
	_, _, err = d.updateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

// ExistsByUsername checks if a user with the given username exists.
func (d *userDAO) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return d.existsByFilter(ctx, bson.M{"username": username})
}

// ExistsByEmail checks if a user with the given email exists.
func (d *userDAO) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return d.existsByFilter(ctx, bson.M{"email": email})
}
