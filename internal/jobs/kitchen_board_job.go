package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// KitchenBoardJob periodically reports the orders the kitchen has to prepare.
type KitchenBoardJob struct {
	board    OrderBoard
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewKitchenBoardJob(board OrderBoard, schedule string, logger *slog.Logger) *KitchenBoardJob {
	return &KitchenBoardJob{
		board:    board,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "kitchen_board_job"),
	}
}

func (j *KitchenBoardJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen board job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *KitchenBoardJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Kitchen board job stopped")
}

func (j *KitchenBoardJob) report(ctx context.Context) {
	ids := j.board.ListCompletedOrders()
	if len(ids) == 0 {
		j.logger.DebugContext(ctx, "No orders waiting for the kitchen")
		return
	}

	orderIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		orderIDs = append(orderIDs, id.String())
	}
	j.logger.InfoContext(ctx, "Orders waiting for the kitchen", "count", len(ids), "order_ids", orderIDs)
}
