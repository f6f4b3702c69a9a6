package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/config"
)

// AppModule aggregates all application modules
var AppModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	DAOModule,        // DAO layer (between Database and Repository)
	RepositoryModule, // Repository layer (delegates to DAO)
	SecurityModule,
	ServiceModule,
	MiddlewareModule,
	ObservabilityModule,
	ControllerModule,
	GraphQLModule,
	JobsModule,
	HTTPServerModule,
)

// PrintBanner prints the application startup banner
func PrintBanner(cfg *config.Config, logger *zap.Logger) {
	logger.Info("===========================================")
	logger.Info("   DevTutor - Learning Platform Backend    ")
	logger.Info("===========================================")
	logger.Info("Application Info",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)
	logger.Info("===========================================")
}
