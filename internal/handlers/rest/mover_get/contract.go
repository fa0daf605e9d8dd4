//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mover_get_test
package mover_get

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
	GetMover(ctx context.Context, id int64) (*entities.Mover, error)
}
