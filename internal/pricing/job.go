package pricing

import (
	"context"

	"github.com/osse101/CropProfit_Go/internal/logger"
	"github.com/osse101/CropProfit_Go/internal/metrics"
)

// DayRolloverJob advances the in-game day and rebuilds the price caches.
// It is enqueued on the worker pool by the scheduler once per day.
type DayRolloverJob struct {
	accessor *Accessor
}

// NewDayRolloverJob creates the job for accessor.
func NewDayRolloverJob(accessor *Accessor) *DayRolloverJob {
	return &DayRolloverJob{accessor: accessor}
}

// Process implements worker.Job.
func (j *DayRolloverJob) Process(ctx context.Context) error {
	day := j.accessor.Clock().Advance()
	logger.FromContext(ctx).Info(LogMsgDayRollover, "days_played", day)
	metrics.DayRollovers.Inc()
	return j.accessor.ForceRebuildCache(ctx)
}
