package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service/internal/entities"
	"service/internal/pkg/geo"
	"service/internal/pkg/schedule"
	moverservice "service/internal/service/mover"
)

const (
	// MsgNoJobs и MsgFoundFmt часть публичного контракта API.
	MsgNoJobs   = "No jobs available matching your schedule"
	MsgFoundFmt = "Found %d job(s) in optimized route"
)

// Planner строит маршрут жадным проходом по кандидатам: без бэктрекинга
// и без глобальной оптимизации, детерминированно по порядку каталога.
type Planner struct {
	moverService MoverService
	jobCatalog   JobCatalog
	timeFactory  JobTimeFactory
	clock        Clock
}

func New(
	moverService MoverService,
	jobCatalog JobCatalog,
	timeFactory JobTimeFactory,
	clock Clock,
) *Planner {
	return &Planner{
		moverService: moverService,
		jobCatalog:   jobCatalog,
		timeFactory:  timeFactory,
		clock:        clock,
	}
}

// SystemClock продакшен-реализация Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

func (p *Planner) PlanRoute(ctx context.Context, query entities.RouteQuery) (*entities.RoutePlan, error) {
	if query.MoverID <= 0 {
		return nil, ErrInvalidMoverID
	}
	if !geo.IsValid(query.CurrentLocation) {
		return nil, ErrInvalidCoordinates
	}
	if query.MaxDurationMinutes != nil && *query.MaxDurationMinutes <= 0 {
		return nil, ErrInvalidMaxDuration
	}

	moverEntity, err := p.moverService.GetMover(ctx, query.MoverID)
	if err != nil {
		// отсутствие мувера не ошибка, а штатный пустой маршрут
		if errors.Is(err, moverservice.ErrMoverNotFound) {
			return emptyPlan(query.CurrentLocation), nil
		}
		return nil, fmt.Errorf("get mover: %w", err)
	}

	if len(moverEntity.Availability) == 0 {
		return emptyPlan(query.CurrentLocation), nil
	}

	jobs, err := p.jobCatalog.ListAvailableJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available jobs: %w", err)
	}

	candidates := filterCandidates(jobs, moverEntity.Availability)

	state := routeState{
		position:      query.CurrentLocation,
		clock:         p.clock.Now(),
		activeMinutes: 0,
	}

	route := p.buildRoute(candidates, state, query.MaxDurationMinutes)

	plan := &entities.RoutePlan{
		Route:         route,
		Metrics:       aggregate(route),
		StartLocation: query.CurrentLocation,
		Message:       fmt.Sprintf(MsgFoundFmt, len(route)),
	}
	if len(route) == 0 {
		plan.Message = MsgNoJobs
	}

	return plan, nil
}

// filterCandidates отбрасывает работы с невалидными координатами и работы,
// чье время не попадает в расписание мувера. Порядок входа сохраняется.
func filterCandidates(jobs []entities.CandidateJob, availability entities.AvailabilitySchedule) []entities.CandidateJob {
	candidates := make([]entities.CandidateJob, 0, len(jobs))
	for _, candidate := range jobs {
		if !geo.IsValid(candidate.Pickup) || !geo.IsValid(candidate.Dropoff) {
			continue
		}
		if !schedule.WithinAvailability(candidate.ScheduledTime, availability) {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

func emptyPlan(start entities.Location) *entities.RoutePlan {
	return &entities.RoutePlan{
		Route:         []entities.RouteStop{},
		Metrics:       entities.RouteMetrics{},
		StartLocation: start,
		Message:       MsgNoJobs,
	}
}
