// Package jobs provides scheduled background tasks for the pancake service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The jobs only read the order service; they never change order state.
//
// # Available Jobs
//
// 1. KitchenBoardJob - reports completed orders waiting to be prepared
// 2. DispatchBoardJob - reports prepared orders waiting for delivery with their address
//
// # Usage
//
//	jobManager := jobs.NewJobManager(orderService, config.KitchenBoardSchedule, config.DispatchBoardSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field, e.g. "*/30 * * * * *".
// An invalid expression makes Start fail; a failed start stops the jobs already running.
package jobs
