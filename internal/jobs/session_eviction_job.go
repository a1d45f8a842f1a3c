package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrInvalidSessionTTL is returned for a non-positive idle limit.
var ErrInvalidSessionTTL = errors.New("session ttl must be greater than 0")

// SessionEvicter drops visitor sessions idle for longer than a limit.
type SessionEvicter interface {
	Evict(idleFor time.Duration) int
}

// SessionEvictionJob periodically drops idle visitor sessions.
type SessionEvictionJob struct {
	sessions SessionEvicter
	schedule string
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionEvictionJob creates a job evicting sessions idle for longer than ttl.
// schedule accepts a six-field cron expression or a descriptor such as "@every 1m".
func NewSessionEvictionJob(sessions SessionEvicter, schedule string, ttl time.Duration, logger *slog.Logger) *SessionEvictionJob {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionEvictionJob{
		sessions: sessions,
		schedule: schedule,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_eviction_job"),
	}
}

// Start schedules the eviction.
func (j *SessionEvictionJob) Start() error {
	if j.ttl <= 0 {
		return ErrInvalidSessionTTL
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session eviction job started",
		"schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Run evicts idle sessions once and returns how many were dropped.
func (j *SessionEvictionJob) Run(ctx context.Context) int {
	evicted := j.sessions.Evict(j.ttl)
	if evicted > 0 {
		j.logger.InfoContext(ctx, "Idle sessions evicted", "count", evicted)
	}
	return evicted
}

// Stop stops the schedule and waits for a running eviction to finish.
func (j *SessionEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session eviction job stopped")
}
