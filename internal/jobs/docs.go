// Package jobs provides scheduled background tasks for the dispatch gateway.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// AccessKeyReaperJob deletes the backend API keys issued at login once no
// bearer token can carry them anymore, that is once they are older than the
// token lifetime. Without it every user who never logs in again would keep
// a dead key in the backend.
//
// # Usage
//
//	reaper := jobs.NewAccessKeyReaperJob(handler, "@hourly", settings.APIKeyName(), settings.TokenTTL(), 30*time.Second, logger)
//	jobManager := jobs.NewJobManager(reaper)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept a seconds field ("0 */10 * * * *") and the cron
// descriptors ("@hourly", "@every 15m").
package jobs
