package response

import (
	"time"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
)

// UserResponse is the public projection of a user. The password hash is
// never present.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio,omitempty"`
	Picture   string    `json:"picture,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse projects a user entity.
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Bio:       user.Bio,
		Picture:   user.Picture,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}

// ProfileResponse is the caller's profile with owned content attached.
type ProfileResponse struct {
	User    UserResponse     `json:"user"`
	Blogs   []BlogResponse   `json:"blogs"`
	Courses []CourseResponse `json:"courses"`
}
