// Package scheduler runs recurring maintenance jobs on a cron schedule.
// Leader election over Redis makes sure only one instance of a scaled
// deployment fires each job, and an execution-window lock suppresses
// duplicates across leadership changes.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// Common cron expressions
	EveryMinute      = "* * * * *"
	EveryFiveMinutes = "*/5 * * * *"
	EveryHour        = "0 * * * *"
	DailyMidnight    = "0 0 * * *"

	leaderKey           = "devtutor:jobs:scheduler:leader"
	cronExecutionPrefix = "devtutor:jobs:cron:execution:"
)

// JobFunc is the body of a scheduled job.
type JobFunc func(ctx context.Context) error

// Config holds scheduler configuration
type Config struct {
	LeaderLockTTL        time.Duration
	CronDeduplicationTTL time.Duration
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() Config {
	return Config{
		LeaderLockTTL:        30 * time.Second,
		CronDeduplicationTTL: 24 * time.Hour,
	}
}

// job is a registered recurring job.
type job struct {
	name     string
	schedule string
	run      JobFunc
}

// Scheduler manages cron-based job execution with leader election
type Scheduler struct {
	redis  *redis.Client
	logger *zap.Logger
	config Config
	cron   *cron.Cron
	jobs   map[string]job
	mu     sync.RWMutex

	instanceID string
	isLeader   bool
	leaderMu   sync.RWMutex

	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewScheduler creates a new scheduler
func NewScheduler(redisClient *redis.Client, logger *zap.Logger) *Scheduler {
	return NewSchedulerWithConfig(redisClient, logger, DefaultConfig())
}

// NewSchedulerWithConfig creates a new scheduler with custom configuration
func NewSchedulerWithConfig(redisClient *redis.Client, logger *zap.Logger, config Config) *Scheduler {
	return &Scheduler{
		redis:      redisClient,
		logger:     logger,
		config:     config,
		cron:       cron.New(),
		jobs:       make(map[string]job),
		instanceID: uuid.New().String(),
		stopCh:     make(chan struct{}),
	}
}

// RegisterJob registers a recurring job. Must be called before Start.
func (s *Scheduler) RegisterJob(name, schedule string, run JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already registered", name)
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	s.jobs[name] = job{name: name, schedule: schedule, run: run}
	s.logger.Info("registered scheduled job",
		zap.String("name", name),
		zap.String("schedule", schedule),
	)

	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	s.running = true
	s.logger.Info("starting scheduler", zap.String("instance_id", s.instanceID))

	s.wg.Add(1)
	go s.leaderElectionLoop(ctx)

	s.setupCronJobs()
	s.cron.Start()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop(ctx context.Context) error {
	if !s.running {
		return nil
	}

	s.logger.Info("stopping scheduler")
	s.running = false
	close(s.stopCh)

	cronCtx := s.cron.Stop()
	select {
	case <-cronCtx.Done():
	case <-ctx.Done():
	}

	s.releaseLeadership(ctx)

	s.wg.Wait()
	return nil
}

// setupCronJobs sets up all registered cron jobs
func (s *Scheduler) setupCronJobs() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, j := range s.jobs {
		j := j
		_, err := s.cron.AddFunc(j.schedule, func() {
			s.executeJob(context.Background(), j)
		})
		if err != nil {
			s.logger.Error("failed to add cron job",
				zap.String("name", j.name),
				zap.Error(err),
			)
		}
	}
}

// executeJob runs a job if this instance is the leader and the execution
// window has not been claimed by another instance.
func (s *Scheduler) executeJob(ctx context.Context, j job) {
	if !s.IsLeader() {
		return
	}

	window := s.executionWindow(j.schedule)
	acquired, err := s.acquireExecutionLock(ctx, j.name, window)
	if err != nil {
		s.logger.Error("failed to acquire cron execution lock",
			zap.String("name", j.name),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		return
	}

	start := time.Now()
	if err := j.run(ctx); err != nil {
		s.logger.Error("scheduled job failed",
			zap.String("name", j.name),
			zap.String("window", window),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("scheduled job completed",
		zap.String("name", j.name),
		zap.String("window", window),
		zap.Duration("duration", time.Since(start)),
	)
}

// executionWindow returns a time window identifier based on the schedule
func (s *Scheduler) executionWindow(schedule string) string {
	now := time.Now().UTC()

	switch schedule {
	case EveryMinute:
		return now.Format("2006-01-02T15:04")
	case EveryFiveMinutes:
		minute := (now.Minute() / 5) * 5
		return now.Format("2006-01-02T15:") + fmt.Sprintf("%02d", minute)
	case EveryHour:
		return now.Format("2006-01-02T15")
	case DailyMidnight:
		return now.Format("2006-01-02")
	default:
		return now.Format("2006-01-02T15:04")
	}
}

// acquireExecutionLock claims an execution window with SETNX
func (s *Scheduler) acquireExecutionLock(ctx context.Context, jobName, window string) (bool, error) {
	lockKey := fmt.Sprintf("%s%s:%s", cronExecutionPrefix, jobName, window)
	return s.redis.SetNX(ctx, lockKey, s.instanceID, s.config.CronDeduplicationTTL).Result()
}

// leaderElectionLoop continuously tries to acquire/maintain leadership
func (s *Scheduler) leaderElectionLoop(ctx context.Context) {
	defer s.wg.Done()

	s.tryAcquireLeadership(ctx)

	ticker := time.NewTicker(s.config.LeaderLockTTL / 3)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tryAcquireLeadership(ctx)
		}
	}
}

// tryAcquireLeadership attempts to acquire or renew leadership
func (s *Scheduler) tryAcquireLeadership(ctx context.Context) {
	s.leaderMu.Lock()
	defer s.leaderMu.Unlock()

	set, err := s.redis.SetNX(ctx, leaderKey, s.instanceID, s.config.LeaderLockTTL).Result()
	if err != nil {
		s.logger.Error("failed to acquire leadership", zap.Error(err))
		s.isLeader = false
		return
	}

	if set {
		if !s.isLeader {
			s.logger.Info("acquired scheduler leadership", zap.String("instance_id", s.instanceID))
		}
		s.isLeader = true
		return
	}

	currentLeader, err := s.redis.Get(ctx, leaderKey).Result()
	if err != nil {
		s.isLeader = false
		return
	}

	if currentLeader == s.instanceID {
		// Renew our lease
		s.redis.Expire(ctx, leaderKey, s.config.LeaderLockTTL)
		s.isLeader = true
	} else {
		if s.isLeader {
			s.logger.Info("lost scheduler leadership",
				zap.String("instance_id", s.instanceID),
				zap.String("new_leader", currentLeader),
			)
		}
		s.isLeader = false
	}
}

// releaseLeadership releases leadership when shutting down
func (s *Scheduler) releaseLeadership(ctx context.Context) {
	s.leaderMu.Lock()
	defer s.leaderMu.Unlock()

	if !s.isLeader {
		return
	}

	// Only delete if we're still the leader
	currentLeader, err := s.redis.Get(ctx, leaderKey).Result()
	if err == nil && currentLeader == s.instanceID {
		s.redis.Del(ctx, leaderKey)
		s.logger.Info("released scheduler leadership", zap.String("instance_id", s.instanceID))
	}

	s.isLeader = false
}

// IsLeader returns whether this instance is the leader
func (s *Scheduler) IsLeader() bool {
	s.leaderMu.RLock()
	defer s.leaderMu.RUnlock()
	return s.isLeader
}
