package request

// RegisterRequest represents a user registration request. Role is optional
// and defaults to "user"; requesting the admin role is rejected.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=user instructor"`
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// UpdateProfileRequest represents a profile update request. The field set is
// the whitelist of mutable profile fields; password changes go through
// ChangePasswordRequest only.
type UpdateProfileRequest struct {
	Username string `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	Email    string `json:"email,omitempty" binding:"omitempty,email,max=100"`
	Bio      string `json:"bio,omitempty" binding:"max=500"`
	Picture  string `json:"picture,omitempty" binding:"omitempty,url"`
	Phone    string `json:"phone,omitempty" binding:"max=30"`
}
