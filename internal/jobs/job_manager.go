package jobs

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Config struct {
	StatsSchedule string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dispatcherStatsJob *DispatcherStatsJob
}

func NewJobManager(cfg Config, dispatcher StatsSource, logger *zap.Logger) *JobManager {
	return &JobManager{
		dispatcherStatsJob: NewDispatcherStatsJob(dispatcher, cfg.StatsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatcherStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatcher stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones until ctx expires.
func (jm *JobManager) StopAll(ctx context.Context) {
	jm.dispatcherStatsJob.Stop(ctx)
}
