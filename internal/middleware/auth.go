// Package middleware provides the gin middleware chain: recovery, request
// ids, logging, CORS and authentication.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/security"
)

// AuthMiddleware provides authentication middleware
type AuthMiddleware struct {
	jwtProvider     *security.JWTProvider
	securityService *security.SecurityService
}

// NewAuthMiddleware creates a new AuthMiddleware instance
func NewAuthMiddleware(jwtProvider *security.JWTProvider, securityService *security.SecurityService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtProvider:     jwtProvider,
		securityService: securityService,
	}
}

// Authenticate validates the JWT token and sets the claims in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, response.NewFail[any]("authorization header required"))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, response.NewFail[any]("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.jwtProvider.ValidateAccessToken(parts[1])
		if err != nil {
			switch err {
			case security.ErrExpiredToken:
				c.JSON(http.StatusUnauthorized, response.NewFail[any]("token has expired"))
			default:
				c.JSON(http.StatusUnauthorized, response.NewFail[any]("invalid token"))
			}
			c.Abort()
			return
		}

		m.securityService.SetCurrentClaims(c, claims)

		c.Next()
	}
}

// OptionalAuth validates the JWT token if present but doesn't require it
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		claims, err := m.jwtProvider.ValidateAccessToken(parts[1])
		if err == nil {
			m.securityService.SetCurrentClaims(c, claims)
		}

		c.Next()
	}
}

// RequireRole checks if the authenticated user holds one of the roles
func (m *AuthMiddleware) RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := m.securityService.GetCurrentClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, response.NewFail[any]("authentication required"))
			c.Abort()
			return
		}

		if !entity.RoleAllowed(claims.Role, roles...) {
			c.JSON(http.StatusForbidden, response.NewFail[any]("insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}
