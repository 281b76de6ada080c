package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	accessKeyReaperJob *AccessKeyReaperJob
}

// NewJobManager creates a job manager over the given jobs.
func NewJobManager(accessKeyReaperJob *AccessKeyReaperJob) *JobManager {
	return &JobManager{
		accessKeyReaperJob: accessKeyReaperJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.accessKeyReaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start access key reaper job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.accessKeyReaperJob.Stop()
}
