package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"bakery/internal/core/application/usecases/queries"
)

// DeliveryStatsJob periodically computes the dashboard counters and writes
// them to the log, giving operators a pulse of the day's workload without
// opening the dashboard.
type DeliveryStatsJob struct {
	handler queries.GetDeliveryStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryStatsJob creates a job that logs delivery stats at the top of
// every hour.
func NewDeliveryStatsJob(handler queries.GetDeliveryStatsQueryHandler, logger *slog.Logger) *DeliveryStatsJob {
	return &DeliveryStatsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_stats_job"),
	}
}

// Start schedules the job to run hourly.
func (j *DeliveryStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetDeliveryStatsQuery(time.Now())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Delivery stats job failed to build query", "error", queryErr)
			return
		}

		stats, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery stats job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Delivery stats",
			"delivered_today", stats.DeliveredToday,
			"due_today", stats.DueToday,
			"due_tomorrow", stats.DueTomorrow,
			"not_available_today", stats.NotAvailableToday,
			"new_orders", stats.NewOrders,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery stats job started (running hourly)")
	return nil
}

// Stop stops the delivery stats job.
func (j *DeliveryStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery stats job stopped")
}
