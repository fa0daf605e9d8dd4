//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobs_get_test
package jobs_get

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListAvailableJobs(ctx context.Context) ([]entities.CandidateJob, error)
}
