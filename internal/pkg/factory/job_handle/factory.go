package job_handle

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/internal/service/jobevent"
)

type StatusHandlerFactory struct {
	catalogService jobevent.CatalogService
}

func NewStatusHandlerFactory(catalogService jobevent.CatalogService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		catalogService: catalogService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.JobStatusType) (jobevent.ExecuteFn, error) {
	switch status {
	case entities.JobAvailable:
		return f.availableHandler, nil
	case entities.JobAssigned:
		return f.assignedHandler, nil
	case entities.JobCancelled:
		return f.cancelledHandler, nil
	case entities.JobCompleted:
		return f.completedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", jobevent.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) availableHandler(ctx context.Context, jobModify entities.JobModify) error {
	err := f.catalogService.UpsertAvailableJob(ctx, jobModify)
	if err != nil {
		return fmt.Errorf("upsert available job %s: %w", orderID(jobModify), err)
	}
	return nil
}

func (f *StatusHandlerFactory) assignedHandler(ctx context.Context, jobModify entities.JobModify) error {
	err := f.catalogService.MarkJobStatus(ctx, orderID(jobModify), entities.JobAssigned)
	if err != nil {
		return fmt.Errorf("mark job %s assigned: %w", orderID(jobModify), err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, jobModify entities.JobModify) error {
	err := f.catalogService.MarkJobStatus(ctx, orderID(jobModify), entities.JobCancelled)
	if err != nil {
		return fmt.Errorf("mark job %s cancelled: %w", orderID(jobModify), err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, jobModify entities.JobModify) error {
	err := f.catalogService.MarkJobStatus(ctx, orderID(jobModify), entities.JobCompleted)
	if err != nil {
		return fmt.Errorf("mark job %s completed: %w", orderID(jobModify), err)
	}
	return nil
}

func orderID(jobModify entities.JobModify) string {
	if jobModify.OrderID == nil {
		return ""
	}
	return *jobModify.OrderID
}
