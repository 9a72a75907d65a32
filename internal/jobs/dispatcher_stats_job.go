package jobs

import (
	"context"
	"fmt"
	"sync"

	"fulfillment/internal/notifications"
	"fulfillment/internal/pkg/logging"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultStatsSchedule = "0 */5 * * * *"

// StatsSource is implemented by notifications.Dispatcher.
type StatsSource interface {
	Stats() notifications.Stats
}

// DispatcherStatsJob periodically reports notification dispatcher counters.
type DispatcherStatsJob struct {
	source   StatsSource
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger

	mu   sync.Mutex
	last notifications.Stats
}

func NewDispatcherStatsJob(source StatsSource, schedule string, logger *zap.Logger) *DispatcherStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	return &DispatcherStatsJob{
		source:   source,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logging.Component(logger, "dispatcher_stats_job"),
	}
}

func (j *DispatcherStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("dispatcher stats job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running report to finish or ctx to expire.
func (j *DispatcherStatsJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
	j.logger.Info("dispatcher stats job stopped")
}

// Run logs one report. Dropped or failed notifications since the previous
// report raise the level to warn.
func (j *DispatcherStatsJob) Run() {
	stats := j.source.Stats()

	j.mu.Lock()
	prev := j.last
	j.last = stats
	j.mu.Unlock()

	newlyDropped := stats.Dropped - prev.Dropped
	newlyFailed := stats.Failed - prev.Failed

	fields := []zap.Field{
		zap.Int64("published", stats.Published),
		zap.Int64("processed", stats.Processed),
		zap.Int64("dropped", stats.Dropped),
		zap.Int64("failed", stats.Failed),
		zap.Int("queued", stats.Queued),
		zap.Int64("processed_since_last", stats.Processed-prev.Processed),
		zap.Int64("dropped_since_last", newlyDropped),
		zap.Int64("failed_since_last", newlyFailed),
	}

	if newlyDropped > 0 || newlyFailed > 0 {
		j.logger.Warn("notification dispatcher stats", fields...)
		return
	}
	j.logger.Info("notification dispatcher stats", fields...)
}
