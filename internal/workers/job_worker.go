package workers

import (
	"context"
	"time"

	"fixa_backend/internal/logger"
	"fixa_backend/internal/services"
)

// JobWorker closes jobs whose visibility window has lapsed.
type JobWorker struct {
	jobs     *services.JobService
	interval time.Duration
}

func NewJobWorker(jobs *services.JobService) *JobWorker {
	return &JobWorker{jobs: jobs, interval: time.Hour}
}

func (w *JobWorker) Start(ctx context.Context) {
	go w.expireJobs(ctx)
}

func (w *JobWorker) expireJobs(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("job worker stopped")
			return
		case <-ticker.C:
			closed, err := w.jobs.CloseExpired()
			logger.WorkerLog("job_worker", "close_expired", err)
			if err == nil && closed > 0 {
				logger.Info("expired jobs closed", "count", closed)
			}
		}
	}
}
