package mover

import (
	"context"
	"fmt"

	"service/internal/entities"
)

type Mover struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Mover {
	return &Mover{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Mover) CreateMover(ctx context.Context, moverModify entities.MoverModify) (int64, error) {
	if moverModify.Name == nil ||
		moverModify.Phone == nil ||
		moverModify.Status == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*moverModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*moverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidStatus(moverModify.Status.String()) {
		return 0, ErrInvalidStatus
	}
	if moverModify.Availability != nil && !isValidAvailability(*moverModify.Availability) {
		return 0, ErrInvalidAvailability
	}

	id, err := s.repository.Create(ctx, moverModify)
	if err != nil {
		return 0, fmt.Errorf("create mover: %w", err)
	}

	return id, nil
}

func (s *Mover) UpdateMover(ctx context.Context, moverModify entities.MoverModify) (*entities.Mover, error) {
	if moverModify.Name == nil &&
		moverModify.Phone == nil &&
		moverModify.Status == nil &&
		moverModify.Availability == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if moverModify.Name != nil && !isValidName(*moverModify.Name) {
		return nil, ErrInvalidName
	}
	if moverModify.Phone != nil && !isValidPhone(*moverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if moverModify.Status != nil && !isValidStatus(moverModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if moverModify.Availability != nil && !isValidAvailability(*moverModify.Availability) {
		return nil, ErrInvalidAvailability
	}

	moverEntity, err := s.repository.Update(ctx, moverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update mover: %w", err)
	}
	return moverEntity, nil
}

func (s *Mover) GetMover(ctx context.Context, id int64) (*entities.Mover, error) {
	if id <= 0 {
		return nil, ErrInvalidMoverID
	}

	moverEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get mover: %w", err)
	}

	return moverEntity, nil
}

func (s *Mover) GetMovers(ctx context.Context) ([]entities.Mover, error) {
	movers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get movers: %w", err)
	}

	return movers, nil
}
