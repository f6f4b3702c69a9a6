package security

import (
	"github.com/gin-gonic/gin"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

const (
	// ContextKeyClaims is the key for storing claims in context
	ContextKeyClaims = "current_claims"
)

// SecurityService provides request-scoped identity utilities
type SecurityService struct {
	jwtProvider *JWTProvider
}

// NewSecurityService creates a new SecurityService instance
func NewSecurityService(jwtProvider *JWTProvider) *SecurityService {
	return &SecurityService{jwtProvider: jwtProvider}
}

// GetCurrentUserID retrieves the current user's ID from the context
func (s *SecurityService) GetCurrentUserID(c *gin.Context) string {
	claims := s.GetCurrentClaims(c)
	if claims != nil {
		return claims.UserID
	}
	return ""
}

// GetCurrentClaims retrieves the current JWT claims from the context
func (s *SecurityService) GetCurrentClaims(c *gin.Context) *UserClaims {
	claims, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	if cl, ok := claims.(*UserClaims); ok {
		return cl
	}
	return nil
}

// SetCurrentClaims sets the current claims in the context
func (s *SecurityService) SetCurrentClaims(c *gin.Context, claims *UserClaims) {
	c.Set(ContextKeyClaims, claims)
}

// IsAuthenticated checks if the current request is authenticated
func (s *SecurityService) IsAuthenticated(c *gin.Context) bool {
	return s.GetCurrentClaims(c) != nil
}

// HasRole checks if the current user holds any of the given roles
func (s *SecurityService) HasRole(c *gin.Context, roles ...entity.UserRole) bool {
	claims := s.GetCurrentClaims(c)
	if claims == nil {
		return false
	}
	return entity.RoleAllowed(claims.Role, roles...)
}
