//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_status_changed_test
package job_status_changed

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
	ProcessJobStatusChange(ctx context.Context, jobModify entities.JobModify) error
}
