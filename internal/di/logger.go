package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/config"
	"github.com/devtutor/devtutor-go/pkg/logger"
)

// LoggerModule provides logging dependencies
var LoggerModule = fx.Module("logger",
	fx.Provide(provideLogger),
)

func provideLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	if cfg.Debug {
		return logger.New(logger.Config{
			Level:       "debug",
			Development: true,
			Encoding:    "console",
		})
	}
	return logger.New(logger.Config{
		Level:    "info",
		Encoding: "json",
	})
}
