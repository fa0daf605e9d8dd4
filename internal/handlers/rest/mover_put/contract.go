//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mover_put_test
package mover_put

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
	UpdateMover(ctx context.Context, moverModifyEntity entities.MoverModify) (*entities.Mover, error)
}
