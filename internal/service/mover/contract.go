//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mover_test
package mover

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, moverModify entities.MoverModify) (int64, error)
	Update(ctx context.Context, moverModify entities.MoverModify) (*entities.Mover, error)
	GetByID(ctx context.Context, id int64) (*entities.Mover, error)
	GetAll(ctx context.Context) ([]entities.Mover, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
