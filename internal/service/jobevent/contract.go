//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobevent_test
package jobevent

import (
	"context"

	"service/internal/entities"
)

// CatalogService реализуется сервисом каталога работ (service/job).
type CatalogService interface {
	UpsertAvailableJob(ctx context.Context, jobModify entities.JobModify) error
	MarkJobStatus(ctx context.Context, orderID string, status entities.JobStatusType) error
}

type (
	ExecuteFn      func(ctx context.Context, jobModify entities.JobModify) error
	HandlerFactory interface {
		GetHandler(status entities.JobStatusType) (ExecuteFn, error)
	}
)
