package di

import (
	"go.uber.org/fx"

	"github.com/devtutor/devtutor-go/internal/config"
)

// ConfigModule provides configuration dependencies
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
		provideAppConfig,
		provideServerConfig,
		provideDatabaseConfig,
		provideRedisConfig,
		provideJWTConfig,
		provideWebhookConfig,
		provideMetricsConfig,
	),
)

func provideAppConfig(cfg *config.Config) *config.AppConfig {
	return &cfg.App
}

func provideServerConfig(cfg *config.Config) *config.ServerConfig {
	return &cfg.Server
}

func provideDatabaseConfig(cfg *config.Config) *config.DatabaseConfig {
	return &cfg.Database
}

func provideRedisConfig(cfg *config.Config) *config.RedisConfig {
	return &cfg.Redis
}

func provideJWTConfig(cfg *config.Config) *config.JWTConfig {
	return &cfg.JWT
}

func provideWebhookConfig(cfg *config.Config) *config.WebhookConfig {
	return &cfg.Webhook
}

func provideMetricsConfig(cfg *config.Config) *config.MetricsConfig {
	return &cfg.Metrics
}
