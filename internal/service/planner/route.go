package planner

import (
	"time"

	"service/internal/entities"
	"service/internal/pkg/geo"
)

// routeState явный аккумулятор жадного прохода: позиция, часы и активное
// время (дорога + работа, ожидание до scheduled time не считается).
type routeState struct {
	position      entities.Location
	clock         time.Time
	activeMinutes float64
}

// buildRoute одиночный проход вперед по времени. На каждом шаге берется
// первый выполнимый кандидат в порядке входного списка; когда выполнимых
// не осталось, проход завершается.
func (p *Planner) buildRoute(
	candidates []entities.CandidateJob,
	state routeState,
	budgetMinutes *float64,
) []entities.RouteStop {
	route := make([]entities.RouteStop, 0, len(candidates))

	remaining := make([]entities.CandidateJob, len(candidates))
	copy(remaining, candidates)

	for len(remaining) > 0 {
		idx, stop, found := p.nextFeasible(remaining, state, budgetMinutes)
		if !found {
			break
		}

		route = append(route, stop)

		state = routeState{
			position:      stop.Job.Dropoff,
			clock:         stop.EstimatedStart.Add(minutesToDuration(stop.EstimatedDurationMinutes)),
			activeMinutes: state.activeMinutes + stop.TravelTimeFromPreviousMins + stop.EstimatedDurationMinutes,
		}

		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return route
}

// nextFeasible кандидат выполним, если мувер успевает к pickup не позже
// scheduled time (ранний приезд означает ожидание) и, при заданном бюджете,
// дорога + работа не выводят активное время за бюджет.
func (p *Planner) nextFeasible(
	remaining []entities.CandidateJob,
	state routeState,
	budgetMinutes *float64,
) (int, entities.RouteStop, bool) {
	for i, candidate := range remaining {
		distanceKm := geo.DistanceKm(state.position, candidate.Pickup)
		travelMinutes := geo.TravelTimeMinutes(distanceKm)

		arrival := state.clock.Add(minutesToDuration(travelMinutes))
		if arrival.After(candidate.ScheduledTime) {
			continue
		}

		handlingMinutes := p.timeFactory.HandlingDuration(candidate.Volume)
		if budgetMinutes != nil &&
			state.activeMinutes+travelMinutes+handlingMinutes > *budgetMinutes {
			continue
		}

		stop := entities.RouteStop{
			Job:                        candidate,
			EstimatedStart:             candidate.ScheduledTime,
			EstimatedDurationMinutes:   handlingMinutes,
			DistanceFromPreviousKm:     distanceKm,
			TravelTimeFromPreviousMins: travelMinutes,
		}
		return i, stop, true
	}

	return 0, entities.RouteStop{}, false
}

func minutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
