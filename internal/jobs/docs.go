// Package jobs runs scheduled background tasks of the fulfillment service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds, descriptors such as "@every 5m" also accepted) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(cfg, dispatcher, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll(ctx)
//
// # Available Jobs
//
// DispatcherStatsJob logs the notification dispatcher counters with the change
// since the previous report. A growing dropped or failed count is the signal
// that the queue is undersized or a provider is down.
package jobs
