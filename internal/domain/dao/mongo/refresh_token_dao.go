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

// refreshTokenDAO implements dao.RefreshTokenDAO using MongoDB.
type refreshTokenDAO struct {
	*baseMongoDAO[entity.RefreshToken, document.RefreshTokenDocument]
	mapper *mapper.RefreshTokenMapper
}

// NewRefreshTokenDAO creates a new MongoDB-based RefreshTokenDAO.
func NewRefreshTokenDAO(db *mongo.Database) dao.RefreshTokenDAO {
	return &refreshTokenDAO{
		baseMongoDAO: newBaseMongoDAO[entity.RefreshToken, document.RefreshTokenDocument](
			db,
			document.RefreshTokenDocument{}.CollectionName(),
		),
		mapper: mapper.NewRefreshTokenMapper(),
	}
}

// Create inserts a new refresh token and assigns its id.
func (d *refreshTokenDAO) Create(ctx context.Context, token *entity.RefreshToken) error {
	token.CreatedAt = time.Now()

	doc := d.mapper.ToDocument(token)
	doc.ID = primitive.NewObjectID()
	if _, err := d.insertOne(ctx, doc); err != nil {
		return err
	}
	token.ID = doc.ID.Hex()
	return nil
}

// FindByToken retrieves a refresh token by its opaque token string.
func (d *refreshTokenDAO) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	var doc document.RefreshTokenDocument
	err := d.findOneByFilter(ctx, bson.M{"token": token}, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// RevokeByToken marks a single refresh token as revoked.
func (d *refreshTokenDAO) RevokeByToken(ctx context.Context, token string) error {
	update := bson.M{"$set": bson.M{"revoked": true}}
	_, _, err := d.updateOne(ctx, bson.M{"token": token}, update)
	return err
}

// RevokeAllByUserID marks all of a user's refresh tokens as revoked.
func (d *refreshTokenDAO) RevokeAllByUserID(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"revoked": true}}
	return d.updateMany(ctx, bson.M{"user_id": oid, "revoked": false}, update)
}

// DeleteExpired removes tokens past their expiry and returns how many.
func (d *refreshTokenDAO) DeleteExpired(ctx context.Context) (int64, error) {
	return d.deleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now()}})
}
