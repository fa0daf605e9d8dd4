package jobevent

import (
	"context"
	"errors"
	"fmt"

	"service/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessJobStatusChange обрабатывает событие job.status.changed из Kafka,
// поддерживая локальную витрину работ в актуальном состоянии.
func (s *Service) ProcessJobStatusChange(ctx context.Context, jobModify entities.JobModify) error {
	if jobModify.OrderID == nil || jobModify.Status == nil {
		return fmt.Errorf("job order id and status are required")
	}

	executeFn, err := s.statusFactory.GetHandler(*jobModify.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	if err := executeFn(ctx, jobModify); err != nil {
		return err
	}

	return nil
}
