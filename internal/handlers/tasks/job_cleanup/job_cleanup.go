package job_cleanup

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	ExpireStaleJobs(ctx context.Context) (int64, error)
}

// JobCleanup периодически переводит просроченные работы (scheduled_time
// в прошлом) из available в expired, чтобы планировщик их не предлагал.
type JobCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewJobCleanup(log logger.Logger, service Service, interval time.Duration) *JobCleanup {
	return &JobCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (j *JobCleanup) TTL() time.Duration {
	return j.interval
}

func (j *JobCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	rowsAffected, err := j.service.ExpireStaleJobs(ctxWithTimeout)

	if rowsAffected > 0 {
		j.log.With(
			logger.NewField("expired_jobs", rowsAffected),
		).Info("job cleanup")
	}

	return err
}

func (j *JobCleanup) Info() string {
	return "job cleanup"
}
