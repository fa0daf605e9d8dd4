//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=planner_test
package planner

import (
	"context"
	"time"

	"service/internal/entities"
)

type MoverService interface {
	GetMover(ctx context.Context, id int64) (*entities.Mover, error)
}

type JobCatalog interface {
	ListAvailableJobs(ctx context.Context) ([]entities.CandidateJob, error)
}

type JobTimeFactory interface {
	HandlingDuration(volume float64) float64
}

type Clock interface {
	Now() time.Time
}
