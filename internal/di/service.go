package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	serviceimpl "github.com/devtutor/devtutor-go/internal/domain/service/impl"
	"github.com/devtutor/devtutor-go/internal/security"
)

// ServiceModule provides service layer dependencies
var ServiceModule = fx.Module("service",
	fx.Provide(
		provideAuthService,
		provideUserService,
		provideBlogService,
		provideCourseService,
		provideWebhookService,
	),
)

func provideAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	jwtProvider *security.JWTProvider,
	passwordHasher *security.PasswordHasher,
) service.AuthService {
	return serviceimpl.NewAuthService(userRepo, refreshTokenRepo, jwtProvider, passwordHasher)
}

func provideUserService(
	userRepo repository.UserRepository,
	blogRepo repository.BlogRepository,
	courseRepo repository.CourseRepository,
	passwordHasher *security.PasswordHasher,
) service.UserService {
	return serviceimpl.NewUserService(userRepo, blogRepo, courseRepo, passwordHasher)
}

func provideBlogService(blogRepo repository.BlogRepository) service.BlogService {
	return serviceimpl.NewBlogService(blogRepo)
}

func provideCourseService(courseRepo repository.CourseRepository) service.CourseService {
	return serviceimpl.NewCourseService(courseRepo)
}

func provideWebhookService(
	userRepo repository.UserRepository,
	eventRepo repository.WebhookEventRepository,
	passwordHasher *security.PasswordHasher,
	logger *zap.Logger,
) service.WebhookService {
	return serviceimpl.NewWebhookService(userRepo, eventRepo, passwordHasher, logger)
}
