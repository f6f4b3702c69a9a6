// Package document defines MongoDB document structs for persistence.
// These structs are separate from domain entities to allow for
// MongoDB-specific field shapes and to keep the entities storage-free.
package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDocument represents a user in MongoDB.
type UserDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Username   string             `bson:"username"`
	Email      string             `bson:"email"`
	Password   string             `bson:"password"`
	Role       string             `bson:"role"`
	Bio        string             `bson:"bio,omitempty"`
	Picture    string             `bson:"picture,omitempty"`
	Phone      string             `bson:"phone,omitempty"`
	ExternalID string             `bson:"external_id,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for users.
func (UserDocument) CollectionName() string {
	return "users"
}

// RefreshTokenDocument represents a refresh token in MongoDB.
type RefreshTokenDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Token     string             `bson:"token"`
	ExpiresAt time.Time          `bson:"expires_at"`
	Revoked   bool               `bson:"revoked"`
	CreatedAt time.Time          `bson:"created_at"`
}

// CollectionName returns the MongoDB collection name for refresh tokens.
func (RefreshTokenDocument) CollectionName() string {
	return "refresh_tokens"
}
