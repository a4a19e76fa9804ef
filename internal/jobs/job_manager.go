package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	kitchenBoardJob  *KitchenBoardJob
	dispatchBoardJob *DispatchBoardJob
}

func NewJobManager(board OrderBoard, kitchenSchedule string, dispatchSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		kitchenBoardJob:  NewKitchenBoardJob(board, kitchenSchedule, logger),
		dispatchBoardJob: NewDispatchBoardJob(board, dispatchSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenBoardJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen board job: %w", err)
	}

	if err := jm.dispatchBoardJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.kitchenBoardJob.Stop()
		return fmt.Errorf("failed to start dispatch board job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchBoardJob.Stop()
	jm.kitchenBoardJob.Stop()
}
