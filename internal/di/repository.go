package di

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/devtutor/devtutor-go/internal/config"
	"github.com/devtutor/devtutor-go/internal/domain/dao"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/domain/repository/impl"
)

// RepositoryModule provides repository dependencies.
// Repositories delegate to the DAO layer for database operations.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		provideUserRepository,
		provideRefreshTokenRepository,
		provideBlogRepository,
		provideCourseRepository,
		provideWebhookEventRepository,
	),
)

func provideUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return impl.NewUserRepository(userDAO)
}

func provideRefreshTokenRepository(refreshTokenDAO dao.RefreshTokenDAO) repository.RefreshTokenRepository {
	return impl.NewRefreshTokenRepository(refreshTokenDAO)
}

func provideBlogRepository(blogDAO dao.BlogDAO) repository.BlogRepository {
	return impl.NewBlogRepository(blogDAO)
}

func provideCourseRepository(courseDAO dao.CourseDAO) repository.CourseRepository {
	return impl.NewCourseRepository(courseDAO)
}

// provideWebhookEventRepository creates the Redis-backed replay protection
// store for inbound webhook events.
func provideWebhookEventRepository(client *redis.Client, cfg *config.WebhookConfig) repository.WebhookEventRepository {
	return impl.NewWebhookEventRepository(client, cfg.DedupTTL)
}
