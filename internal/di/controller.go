package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	httpctrl "github.com/devtutor/devtutor-go/internal/controller/http"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/middleware"
	"github.com/devtutor/devtutor-go/internal/observability"
	"github.com/devtutor/devtutor-go/internal/security"
)

// ControllerModule provides HTTP controller dependencies
var ControllerModule = fx.Module("controller",
	fx.Provide(
		provideAuthController,
		provideBlogController,
		provideCourseController,
		provideWebhookController,
	),
)

func provideAuthController(
	authService service.AuthService,
	userService service.UserService,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
) *httpctrl.AuthController {
	return httpctrl.NewAuthController(authService, userService, securityService, authMiddleware)
}

func provideBlogController(
	blogService service.BlogService,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
) *httpctrl.BlogController {
	return httpctrl.NewBlogController(blogService, securityService, authMiddleware)
}

func provideCourseController(
	courseService service.CourseService,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
) *httpctrl.CourseController {
	return httpctrl.NewCourseController(courseService, securityService, authMiddleware)
}

func provideWebhookController(
	webhookService service.WebhookService,
	verifier *security.WebhookVerifier,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) *httpctrl.WebhookController {
	return httpctrl.NewWebhookController(webhookService, verifier, metrics, logger)
}
