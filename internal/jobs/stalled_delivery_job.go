package jobs

import (
	"context"
	"log/slog"
	"time"

	"freightflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalledDeliveryJob periodically reports active deliveries whose last
// status change is older than the configured threshold. It performs no
// transitions: the delivery lifecycle is strictly caller-driven, so the
// job only surfaces deliveries that may need operator attention.
type StalledDeliveryJob struct {
	handler   queries.GetStalledDeliveriesQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalledDeliveryJob creates a job that monitors delivery progress.
// Uses GetStalledDeliveriesQueryHandler to find deliveries stalled for
// longer than the threshold, checking every minute.
func NewStalledDeliveryJob(
	handler queries.GetStalledDeliveriesQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StalledDeliveryJob {
	return &StalledDeliveryJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "stalled_delivery_job"),
	}
}

// Start begins the stalled delivery check to run every minute.
func (j *StalledDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalledDeliveriesQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build stalled deliveries query", "error", queryErr)
			return
		}

		stalled, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stalled delivery check failed", "error", handleErr)
			return
		}

		for _, dlv := range stalled {
			j.logger.WarnContext(ctx, "Delivery has not progressed",
				"delivery_id", dlv.ID.String(),
				"status", dlv.Status.String(),
				"updated_at", dlv.UpdatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled delivery job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the stalled delivery job.
func (j *StalledDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled delivery job stopped")
}
