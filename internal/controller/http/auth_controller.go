// Package http contains the gin HTTP controllers.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/middleware"
	"github.com/devtutor/devtutor-go/internal/security"
)

const msgValidationFailed = "validation failed"

// AuthController handles authentication endpoints
type AuthController struct {
	authService     service.AuthService
	userService     service.UserService
	securityService *security.SecurityService
	authMiddleware  *middleware.AuthMiddleware
}

// NewAuthController creates a new AuthController instance
func NewAuthController(
	authService service.AuthService,
	userService service.UserService,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
) *AuthController {
	return &AuthController{
		authService:     authService,
		userService:     userService,
		securityService: securityService,
		authMiddleware:  authMiddleware,
	}
}

// RegisterRoutes registers the auth routes
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.Register)
		auth.POST("/login", c.Login)
		auth.POST("/refresh", c.RefreshToken)

		protected := auth.Group("", c.authMiddleware.Authenticate())
		{
			protected.POST("/logout", c.Logout)
			protected.POST("/logout-all", c.LogoutAll)
			protected.GET("/me", c.Me)
			protected.GET("/profile", c.Profile)
			protected.PUT("/profile", c.UpdateProfile)
			protected.PUT("/password", c.ChangePassword)
		}
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "Registration request"
// @Success 201 {object} response.ApiResponse[response.AuthResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	authResp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrUserAlreadyExists:
			ctx.JSON(http.StatusConflict, response.NewFail[any]("user already exists"))
		case service.ErrInvalidRole:
			ctx.JSON(http.StatusBadRequest, response.NewFail[any]("requested role is not allowed"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("registration failed"))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(authResp, "User registered successfully"))
}

// Login handles user login
// @Summary Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.ApiResponse[response.AuthResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	authResp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			ctx.JSON(http.StatusUnauthorized, response.NewFail[any]("invalid credentials"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("login failed"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(authResp, "Login successful"))
}

// RefreshToken handles token refresh
// @Summary Refresh access token using refresh token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} response.ApiResponse[response.AuthResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req request.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	authResp, err := c.authService.RefreshToken(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrInvalidToken:
			ctx.JSON(http.StatusUnauthorized, response.NewFail[any]("invalid or expired refresh token"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("token refresh failed"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(authResp, "Token refreshed successfully"))
}

// Logout revokes the presented refresh token
// @Summary Logout current session
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.RefreshTokenRequest true "Refresh token to revoke"
// @Success 200 {object} response.ApiResponse[any]
// @Router /api/v1/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req request.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), req.RefreshToken); err != nil {
		ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("logout failed"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Logged out successfully"))
}

// LogoutAll revokes every refresh token of the caller
// @Summary Logout all sessions
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ApiResponse[any]
// @Router /api/v1/auth/logout-all [post]
func (c *AuthController) LogoutAll(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, response.NewFail[any]("authentication required"))
		return
	}

	if err := c.authService.LogoutAll(ctx.Request.Context(), userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("logout failed"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "All sessions logged out"))
}

// Me returns the caller's own record
// @Summary Get current user
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ApiResponse[response.UserResponse]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, response.NewFail[any]("authentication required"))
		return
	}

	user, err := c.userService.GetMe(ctx.Request.Context(), userID)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("user not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to load user"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(user))
}

// Profile returns the caller's record with owned content
// @Summary Get current user's profile with owned blogs and courses
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/auth/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, response.NewFail[any]("authentication required"))
		return
	}

	profile, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("user not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to load profile"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(profile))
}

// UpdateProfile applies a partial profile update
// @Summary Update current user's profile
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpdateProfileRequest true "Profile update"
// @Success 200 {object} response.ApiResponse[response.UserResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, response.NewFail[any]("authentication required"))
		return
	}

	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("user not found"))
		case service.ErrUserAlreadyExists:
			ctx.JSON(http.StatusConflict, response.NewFail[any]("username or email already taken"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("profile update failed"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(user, "Profile updated successfully"))
}

// ChangePassword verifies the current password, stores a new one and issues
// a fresh token pair. Previously issued access tokens stay valid until expiry.
// @Summary Change current user's password
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ChangePasswordRequest true "Password change"
// @Success 200 {object} response.ApiResponse[response.AuthResponse]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/auth/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, response.NewFail[any]("authentication required"))
		return
	}

	var req request.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	if err := c.userService.ChangePassword(ctx.Request.Context(), userID, &req); err != nil {
		switch err {
		case service.ErrUserNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("user not found"))
		case service.ErrInvalidCredentials:
			ctx.JSON(http.StatusUnauthorized, response.NewFail[any]("current password is incorrect"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("password change failed"))
		}
		return
	}

	authResp, err := c.authService.IssueTokens(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("password change failed"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(authResp, "Password changed successfully"))
}
