package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReaperSchedule runs the reaper at the start of every hour.
const DefaultReaperSchedule = "@hourly"

// AccessKeyReaper deletes stale API keys.
type AccessKeyReaper interface {
	Handle(ctx context.Context, command commands.ReapAccessKeysCommand) (int64, error)
}

// AccessKeyReaperJob periodically removes API keys older than the token
// lifetime. No unexpired bearer token can carry such a key, so deleting it
// only frees backend rows.
type AccessKeyReaperJob struct {
	reaper   AccessKeyReaper
	schedule string
	keyName  string
	tokenTTL time.Duration
	timeout  time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAccessKeyReaperJob creates the job. An empty schedule means DefaultReaperSchedule.
func NewAccessKeyReaperJob(
	reaper AccessKeyReaper,
	schedule, keyName string,
	tokenTTL, timeout time.Duration,
	logger *slog.Logger,
) *AccessKeyReaperJob {
	if schedule == "" {
		schedule = DefaultReaperSchedule
	}
	return &AccessKeyReaperJob{
		reaper:   reaper,
		schedule: schedule,
		keyName:  keyName,
		tokenTTL: tokenTTL,
		timeout:  timeout,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "access_key_reaper_job"),
	}
}

// Start schedules the job. It fails when the schedule cannot be parsed.
func (j *AccessKeyReaperJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("invalid reaper schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Access key reaper job started", "schedule", j.schedule)
	return nil
}

// RunOnce deletes the keys created before now minus the token lifetime.
// Failures are logged; the next run retries.
func (j *AccessKeyReaperJob) RunOnce(ctx context.Context) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	cutoff := j.now().Add(-j.tokenTTL)
	cmd, err := commands.NewReapAccessKeysCommand(j.keyName, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Access key reaper misconfigured", "error", err)
		return
	}

	deleted, err := j.reaper.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Access key reaper job failed", "error", err)
		return
	}
	if deleted > 0 {
		j.logger.InfoContext(ctx, "Stale access keys deleted", "count", deleted, "created_before", cutoff)
	}
}

// Stop stops scheduling and waits for a running reap to finish.
func (j *AccessKeyReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Access key reaper job stopped")
}
