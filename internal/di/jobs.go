package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/jobs"
	"github.com/devtutor/devtutor-go/internal/jobs/scheduler"
)

// JobsModule provides the recurring job scheduler
var JobsModule = fx.Module("jobs",
	fx.Provide(
		provideScheduler,
		provideTokenCleanupJob,
	),
	fx.Invoke(
		registerScheduledJobs,
		startScheduler,
	),
)

func provideScheduler(client *redis.Client, logger *zap.Logger) *scheduler.Scheduler {
	return scheduler.NewScheduler(client, logger)
}

func provideTokenCleanupJob(
	refreshTokenRepo repository.RefreshTokenRepository,
	logger *zap.Logger,
) *jobs.TokenCleanupJob {
	return jobs.NewTokenCleanupJob(refreshTokenRepo, logger)
}

// registerScheduledJobs wires the recurring jobs into the scheduler.
func registerScheduledJobs(sched *scheduler.Scheduler, cleanup *jobs.TokenCleanupJob, logger *zap.Logger) error {
	if err := sched.RegisterJob(jobs.TokenCleanupJobName, scheduler.DailyMidnight, cleanup.Run); err != nil {
		return fmt.Errorf("failed to register %s: %w", jobs.TokenCleanupJobName, err)
	}
	logger.Info("Registered scheduled jobs")
	return nil
}

func startScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting job scheduler")
			return sched.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping job scheduler")
			return sched.Stop(ctx)
		},
	})
}
