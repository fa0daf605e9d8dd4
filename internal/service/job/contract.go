//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_test
package job

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	ListAvailable(ctx context.Context) ([]entities.CandidateJob, error)
	Upsert(ctx context.Context, jobModify entities.JobModify) (*entities.CandidateJob, error)
	UpdateStatusByOrderID(ctx context.Context, orderID string, status entities.JobStatusType) error
	ExpireWhereScheduledBeforeNow(ctx context.Context) (int64, error)
}
