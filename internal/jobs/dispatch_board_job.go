package jobs

import (
	"context"
	"errors"
	"log/slog"

	"pancakes/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DispatchBoardJob periodically reports prepared orders with their delivery address.
type DispatchBoardJob struct {
	board    OrderBoard
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDispatchBoardJob(board OrderBoard, schedule string, logger *slog.Logger) *DispatchBoardJob {
	return &DispatchBoardJob{
		board:    board,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dispatch_board_job"),
	}
}

func (j *DispatchBoardJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch board job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *DispatchBoardJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch board job stopped")
}

func (j *DispatchBoardJob) report(ctx context.Context) {
	reported := 0
	for _, id := range j.board.ListPreparedOrders() {
		view, err := j.board.GetOrder(id)
		if err != nil {
			// Delivered between listing and lookup
			if !errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Dispatch board lookup failed", "order_id", id.String(), "error", err)
			}
			continue
		}

		reported++
		j.logger.InfoContext(ctx, "Order ready for delivery",
			"order_id", view.ID.String(),
			"building", view.Building,
			"room", view.Room,
			"pancakes", view.PancakeCount)
	}

	if reported == 0 {
		j.logger.DebugContext(ctx, "No orders waiting for delivery")
	}
}
