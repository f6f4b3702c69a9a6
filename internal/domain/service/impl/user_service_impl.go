package impl

import (
	"context"

	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/security"
)

// userService implements service.UserService
type userService struct {
	userRepo       repository.UserRepository
	blogRepo       repository.BlogRepository
	courseRepo     repository.CourseRepository
	passwordHasher *security.PasswordHasher
}

// NewUserService creates a new UserService instance
func NewUserService(
	userRepo repository.UserRepository,
	blogRepo repository.BlogRepository,
	courseRepo repository.CourseRepository,
	passwordHasher *security.PasswordHasher,
) service.UserService {
	return &userService{
		userRepo:       userRepo,
		blogRepo:       blogRepo,
		courseRepo:     courseRepo,
		passwordHasher: passwordHasher,
	}
}

func (s *userService) GetMe(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}

	resp := response.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}

	blogs, err := s.blogRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.ListByInstructor(ctx, userID)
	if err != nil {
		return nil, err
	}

	blogResponses := make([]response.BlogResponse, len(blogs))
	for i, b := range blogs {
		blogResponses[i] = response.NewBlogResponse(b)
	}
	courseResponses := make([]response.CourseResponse, len(courses))
	for i, c := range courses {
		courseResponses[i] = response.NewCourseResponse(c)
	}

	return &response.ProfileResponse{
		User:    response.NewUserResponse(user),
		Blogs:   blogResponses,
		Courses: courseResponses,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}

	if req.Username != "" && req.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, service.ErrUserAlreadyExists
		}
		user.Username = req.Username
	}
	if req.Email != "" && req.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, service.ErrUserAlreadyExists
		}
		user.Email = req.Email
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Picture != "" {
		user.Picture = req.Picture
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := response.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return service.ErrUserNotFound
	}

	if !s.passwordHasher.Verify(req.CurrentPassword, user.Password) {
		return service.ErrInvalidCredentials
	}

	hashed, err := s.passwordHasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed

	return s.userRepo.Update(ctx, user)
}
