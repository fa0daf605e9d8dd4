package mover

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/mover"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, moverModifyEntity entities.MoverModify) (int64, error) {
	moverModifyModel, err := FromDomainModify(&moverModifyEntity)
	if err != nil {
		return 0, fmt.Errorf("unexpected mover repository create error: %w", err)
	}

	availability := moverModifyModel.Availability
	if availability == nil {
		availability = []byte(`{}`)
	}

	query := `INSERT INTO movers (name, phone, status, availability)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err = r.querier.QueryRow(
		ctx,
		query,
		moverModifyModel.Name,
		moverModifyModel.Phone,
		moverModifyModel.Status,
		availability,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, mover.ErrConflict
		}
		return 0, fmt.Errorf("unexpected mover repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, moverModifyEntity entities.MoverModify) (*entities.Mover, error) {
	moverModifyModel, err := FromDomainModify(&moverModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected mover repository update error: %w", err)
	}

	builder := qb.
		Update("movers")

	// опциональные поля
	if moverModifyModel.Name != nil {
		builder = builder.Set("name", moverModifyModel.Name)
	}
	if moverModifyModel.Phone != nil {
		builder = builder.Set("phone", moverModifyModel.Phone)
	}
	if moverModifyModel.Status != nil {
		builder = builder.Set("status", moverModifyModel.Status)
	}
	if moverModifyModel.Availability != nil {
		builder = builder.Set("availability", moverModifyModel.Availability)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": moverModifyModel.ID}).
		Suffix("RETURNING id, name, phone, status, availability, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected mover repository update error: %w", err)
	}

	var moverModel MoverDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&moverModel.ID,
			&moverModel.Name,
			&moverModel.Phone,
			&moverModel.Status,
			&moverModel.Availability,
			&moverModel.CreatedAt,
			&moverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, mover.ErrMoverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, mover.ErrConflict
		}

		return nil, fmt.Errorf("unexpected mover repository update error: %w", err)
	}

	return ToDomain(&moverModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Mover, error) {
	query := `SELECT id, name, phone, status, availability, created_at, updated_at
		FROM movers
		WHERE id = $1`

	var moverModel MoverDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&moverModel.ID,
			&moverModel.Name,
			&moverModel.Phone,
			&moverModel.Status,
			&moverModel.Availability,
			&moverModel.CreatedAt,
			&moverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, mover.ErrMoverNotFound
		}

		return nil, fmt.Errorf("unexpected mover repository getbyid error: %w", err)
	}

	return ToDomain(&moverModel)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Mover, error) {
	query := `
	SELECT id, name, phone, status, availability, created_at, updated_at
	FROM movers
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected mover repository getall error: %w", err)
	}
	defer rows.Close()

	moverModels := make([]MoverDB, 0, 8)
	for rows.Next() {
		var moverModel MoverDB
		err := rows.Scan(
			&moverModel.ID,
			&moverModel.Name,
			&moverModel.Phone,
			&moverModel.Status,
			&moverModel.Availability,
			&moverModel.CreatedAt,
			&moverModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected mover repository getall error: %w", err)
		}
		moverModels = append(moverModels, moverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected mover repository getall error: %w", err)
	}

	return ToDomainList(moverModels)
}
