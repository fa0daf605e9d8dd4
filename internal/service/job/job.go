package job

import (
	"context"
	"errors"
	"fmt"

	"service/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// ListAvailableJobs свободные работы, отсортированные по scheduled_time.
// Порядок важен: планировщик использует его как tie-break.
func (s *Service) ListAvailableJobs(ctx context.Context) ([]entities.CandidateJob, error) {
	jobs, err := s.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available jobs: %w", err)
	}
	return jobs, nil
}

func (s *Service) UpsertAvailableJob(ctx context.Context, jobModify entities.JobModify) error {
	if jobModify.OrderID == nil ||
		jobModify.Pickup == nil ||
		jobModify.Dropoff == nil ||
		jobModify.ScheduledTime == nil {
		return ErrMissingRequiredFields
	}

	available := entities.JobAvailable
	jobModify.Status = &available

	if _, err := s.repository.Upsert(ctx, jobModify); err != nil {
		return fmt.Errorf("upsert available job: %w", err)
	}
	return nil
}

func (s *Service) MarkJobStatus(ctx context.Context, orderID string, status entities.JobStatusType) error {
	if orderID == "" {
		return ErrMissingRequiredFields
	}

	if err := s.repository.UpdateStatusByOrderID(ctx, orderID, status); err != nil {
		return fmt.Errorf("mark job %s as %s: %w", orderID, status, err)
	}
	return nil
}

// ExpireStaleJobs закрывает свободные работы с прошедшим scheduled_time.
func (s *Service) ExpireStaleJobs(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.ExpireWhereScheduledBeforeNow(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("expire stale jobs timed out: %w", err)
		}
		return 0, fmt.Errorf("expire stale jobs: %w", err)
	}

	return rowsAffected, nil
}
