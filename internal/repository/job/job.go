package job

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/internal/service/job"
)

const jobColumns = `id, order_id, student_id, job_type, volume, price,
		pickup_lat, pickup_lng, pickup_address,
		dropoff_lat, dropoff_lng, dropoff_address,
		scheduled_time, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListAvailable порядок по scheduled_time фиксирует tie-break планировщика.
func (r *Repository) ListAvailable(ctx context.Context) ([]entities.CandidateJob, error) {
	query := `
	SELECT ` + jobColumns + `
	FROM jobs
	WHERE status = 'available'
	ORDER BY scheduled_time ASC, id ASC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected job repository listavailable error: %w", err)
	}
	defer rows.Close()

	jobModels := make([]JobDB, 0, 16)
	for rows.Next() {
		var jobModel JobDB
		err := rows.Scan(
			&jobModel.ID,
			&jobModel.OrderID,
			&jobModel.StudentID,
			&jobModel.JobType,
			&jobModel.Volume,
			&jobModel.Price,
			&jobModel.PickupLat,
			&jobModel.PickupLng,
			&jobModel.PickupAddress,
			&jobModel.DropoffLat,
			&jobModel.DropoffLng,
			&jobModel.DropoffAddress,
			&jobModel.ScheduledTime,
			&jobModel.Status,
			&jobModel.CreatedAt,
			&jobModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected job repository listavailable error: %w", err)
		}
		jobModels = append(jobModels, jobModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected job repository listavailable error: %w", err)
	}

	return ToDomainList(jobModels), nil
}

// Upsert событие available может прийти повторно (ретраи продюсера),
// поэтому конфликт по order_id перезаписывает строку.
func (r *Repository) Upsert(ctx context.Context, jobModify entities.JobModify) (*entities.CandidateJob, error) {
	query := `
	INSERT INTO jobs (order_id, student_id, job_type, volume, price,
		pickup_lat, pickup_lng, pickup_address,
		dropoff_lat, dropoff_lng, dropoff_address,
		scheduled_time, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (order_id) DO UPDATE SET
		student_id = EXCLUDED.student_id,
		job_type = EXCLUDED.job_type,
		volume = EXCLUDED.volume,
		price = EXCLUDED.price,
		pickup_lat = EXCLUDED.pickup_lat,
		pickup_lng = EXCLUDED.pickup_lng,
		pickup_address = EXCLUDED.pickup_address,
		dropoff_lat = EXCLUDED.dropoff_lat,
		dropoff_lng = EXCLUDED.dropoff_lng,
		dropoff_address = EXCLUDED.dropoff_address,
		scheduled_time = EXCLUDED.scheduled_time,
		status = EXCLUDED.status,
		updated_at = NOW()
	RETURNING ` + jobColumns

	var jobModel JobDB
	err := r.querier.QueryRow(
		ctx,
		query,
		stringOrEmpty(jobModify.OrderID),
		stringOrEmpty(jobModify.StudentID),
		jobTypeOrDefault(jobModify.JobType),
		floatOrZero(jobModify.Volume),
		floatOrZero(jobModify.Price),
		locationLat(jobModify.Pickup),
		locationLng(jobModify.Pickup),
		locationAddress(jobModify.Pickup),
		locationLat(jobModify.Dropoff),
		locationLng(jobModify.Dropoff),
		locationAddress(jobModify.Dropoff),
		jobModify.ScheduledTime,
		statusOrDefault(jobModify.Status),
	).Scan(
		&jobModel.ID,
		&jobModel.OrderID,
		&jobModel.StudentID,
		&jobModel.JobType,
		&jobModel.Volume,
		&jobModel.Price,
		&jobModel.PickupLat,
		&jobModel.PickupLng,
		&jobModel.PickupAddress,
		&jobModel.DropoffLat,
		&jobModel.DropoffLng,
		&jobModel.DropoffAddress,
		&jobModel.ScheduledTime,
		&jobModel.Status,
		&jobModel.CreatedAt,
		&jobModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected job repository upsert error: %w", err)
	}

	return ToDomain(&jobModel), nil
}

func (r *Repository) UpdateStatusByOrderID(ctx context.Context, orderID string, status entities.JobStatusType) error {
	query := `
	UPDATE jobs
	SET status = $2,
	    updated_at = NOW()
	WHERE order_id = $1`

	result, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected job repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

func (r *Repository) ExpireWhereScheduledBeforeNow(ctx context.Context) (int64, error) {
	query := `
	UPDATE jobs
	SET status = 'expired',
	    updated_at = NOW()
	WHERE status = 'available'
	  AND scheduled_time < NOW()`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected job repository expire error: %w", err)
	}

	return result.RowsAffected(), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func jobTypeOrDefault(t *entities.JobTypeTag) string {
	if t == nil {
		return entities.JobTypeMoving.String()
	}
	return t.String()
}

func statusOrDefault(s *entities.JobStatusType) string {
	if s == nil {
		return entities.JobAvailable.String()
	}
	return s.String()
}

func locationLat(loc *entities.Location) float64 {
	if loc == nil {
		return 0
	}
	return loc.Lat
}

func locationLng(loc *entities.Location) float64 {
	if loc == nil {
		return 0
	}
	return loc.Lng
}

func locationAddress(loc *entities.Location) string {
	if loc == nil {
		return ""
	}
	return loc.Address
}
