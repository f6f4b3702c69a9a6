package scheduler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	return NewScheduler(nil, zap.NewNop())
}

func TestScheduler_RegisterJob(t *testing.T) {
	s := newTestScheduler(t)

	noop := func(ctx context.Context) error { return nil }

	if err := s.RegisterJob("cleanup", DailyMidnight, noop); err != nil {
		t.Fatalf("RegisterJob() error = %v", err)
	}
	if err := s.RegisterJob("cleanup", EveryHour, noop); err == nil {
		t.Error("RegisterJob() accepted a duplicate name")
	}
	if err := s.RegisterJob("broken", "not a cron expr", noop); err == nil {
		t.Error("RegisterJob() accepted an invalid schedule")
	}
}

func TestScheduler_ExecutionWindow(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Now().UTC()

	if got := s.executionWindow(DailyMidnight); got != now.Format("2006-01-02") {
		t.Errorf("daily window = %v", got)
	}
	if got := s.executionWindow(EveryHour); got != now.Format("2006-01-02T15") {
		t.Errorf("hourly window = %v", got)
	}
	// Windows for five-minute schedules round down to the bucket start
	fiveMin := s.executionWindow(EveryFiveMinutes)
	if len(fiveMin) != len("2006-01-02T15:04") {
		t.Errorf("five-minute window = %v", fiveMin)
	}
}

func TestScheduler_NotLeaderByDefault(t *testing.T) {
	s := newTestScheduler(t)
	if s.IsLeader() {
		t.Error("fresh scheduler claims leadership")
	}
}
