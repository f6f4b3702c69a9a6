package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/config"
	"github.com/devtutor/devtutor-go/internal/observability"
)

// ObservabilityModule provides metrics dependencies
var ObservabilityModule = fx.Module("observability",
	fx.Provide(provideMetricsProvider),
)

func provideMetricsProvider(
	lc fx.Lifecycle,
	appCfg *config.AppConfig,
	metricsCfg *config.MetricsConfig,
	logger *zap.Logger,
) (*observability.MetricsProvider, error) {
	mp, err := observability.NewMetricsProvider(&observability.MetricsConfig{
		Enabled:        metricsCfg.Enabled,
		ServiceName:    appCfg.Name,
		PrometheusPath: metricsCfg.Path,
	}, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return mp.Shutdown(ctx)
		},
	})

	return mp, nil
}
