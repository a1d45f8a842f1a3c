package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionEvictionJob *SessionEvictionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sessions SessionEvicter,
	evictionSchedule string,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionEvictionJob: NewSessionEvictionJob(sessions, evictionSchedule, sessionTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionEvictionJob.Start(); err != nil {
		return fmt.Errorf("failed to start session eviction job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionEvictionJob.Stop()
}
