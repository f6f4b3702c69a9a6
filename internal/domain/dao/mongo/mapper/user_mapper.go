// Package mapper converts between domain entities and MongoDB documents.
// Entities carry ids as ObjectID hex strings; mappers own the conversion.
package mapper

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devtutor/devtutor-go/internal/domain/dao/mongo/document"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// objectIDFromHex parses a hex id, returning the zero ObjectID for ids that
// have not been assigned yet.
func objectIDFromHex(id string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

// hexFromObjectID renders an assigned ObjectID as a hex string.
func hexFromObjectID(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

// UserMapper converts between User entity and UserDocument.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDocument converts a User entity to a UserDocument.
func (m *UserMapper) ToDocument(user *entity.User) *document.UserDocument {
	if user == nil {
		return nil
	}

	return &document.UserDocument{
		ID:         objectIDFromHex(user.ID),
		Username:   user.Username,
		Email:      user.Email,
		Password:   user.Password,
		Role:       string(user.Role),
		Bio:        user.Bio,
		Picture:    user.Picture,
		Phone:      user.Phone,
		ExternalID: user.ExternalID,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// ToEntity converts a UserDocument to a User entity.
func (m *UserMapper) ToEntity(doc *document.UserDocument) *entity.User {
	if doc == nil {
		return nil
	}

	return &entity.User{
		ID:         hexFromObjectID(doc.ID),
		Username:   doc.Username,
		Email:      doc.Email,
		Password:   doc.Password,
		Role:       entity.UserRole(doc.Role),
		Bio:        doc.Bio,
		Picture:    doc.Picture,
		Phone:      doc.Phone,
		ExternalID: doc.ExternalID,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

// ToEntities converts a slice of UserDocuments to User entities.
func (m *UserMapper) ToEntities(docs []*document.UserDocument) []*entity.User {
	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, m.ToEntity(doc))
	}
	return users
}

// RefreshTokenMapper converts between RefreshToken entity and RefreshTokenDocument.
type RefreshTokenMapper struct{}

// NewRefreshTokenMapper creates a new RefreshTokenMapper instance.
func NewRefreshTokenMapper() *RefreshTokenMapper {
	return &RefreshTokenMapper{}
}

// ToDocument converts a RefreshToken entity to a RefreshTokenDocument.
func (m *RefreshTokenMapper) ToDocument(token *entity.RefreshToken) *document.RefreshTokenDocument {
	if token == nil {
		return nil
	}

	return &document.RefreshTokenDocument{
		ID:        objectIDFromHex(token.ID),
		UserID:    objectIDFromHex(token.UserID),
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Revoked:   token.Revoked,
		CreatedAt: token.CreatedAt,
	}
}

// ToEntity converts a RefreshTokenDocument to a RefreshToken entity.
func (m *RefreshTokenMapper) ToEntity(doc *document.RefreshTokenDocument) *entity.RefreshToken {
	if doc == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        hexFromObjectID(doc.ID),
		UserID:    hexFromObjectID(doc.UserID),
		Token:     doc.Token,
		ExpiresAt: doc.ExpiresAt,
		Revoked:   doc.Revoked,
		CreatedAt: doc.CreatedAt,
	}
}
