package route_plan_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/entities"
	"service/internal/service/planner"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var routePlanDTO dto.RoutePlanRequest
	err := json.NewDecoder(r.Body).Decode(&routePlanDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// mover_id и обе координаты обязательны, поля-указатели
	// отличают отсутствующее значение от нулевого
	if routePlanDTO.MoverID == nil ||
		routePlanDTO.CurrentLocation == nil ||
		routePlanDTO.CurrentLocation.Lat == nil ||
		routePlanDTO.CurrentLocation.Lng == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	query := entities.RouteQuery{
		MoverID: *routePlanDTO.MoverID,
		CurrentLocation: entities.Location{
			Lat:     *routePlanDTO.CurrentLocation.Lat,
			Lng:     *routePlanDTO.CurrentLocation.Lng,
			Address: routePlanDTO.CurrentLocation.Address,
		},
		MaxDurationMinutes: routePlanDTO.MaxDurationMinutes,
	}

	plan, err := h.service.PlanRoute(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrInvalidMoverID),
			errors.Is(err, planner.ErrInvalidCoordinates),
			errors.Is(err, planner.ErrInvalidMaxDuration):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toRoutePlanDTO(plan)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toRoutePlanDTO(plan *entities.RoutePlan) dto.RoutePlanResponse {
	stops := make([]dto.RouteStop, len(plan.Route))
	for i, stop := range plan.Route {
		stops[i] = dto.RouteStop{
			Job:                        toJobDTO(stop.Job),
			EstimatedStart:             stop.EstimatedStart,
			EstimatedDurationMinutes:   stop.EstimatedDurationMinutes,
			DistanceFromPreviousKm:     stop.DistanceFromPreviousKm,
			TravelTimeFromPreviousMins: stop.TravelTimeFromPreviousMins,
		}
	}

	return dto.RoutePlanResponse{
		Route: stops,
		Metrics: dto.RouteMetrics{
			TotalEarnings:        plan.Metrics.TotalEarnings,
			TotalJobs:            plan.Metrics.TotalJobs,
			TotalDistanceKm:      plan.Metrics.TotalDistanceKm,
			TotalDurationMinutes: plan.Metrics.TotalDurationMinutes,
			EarningsPerHour:      plan.Metrics.EarningsPerHour,
		},
		StartLocation: dto.Location{
			Lat:     plan.StartLocation.Lat,
			Lng:     plan.StartLocation.Lng,
			Address: plan.StartLocation.Address,
		},
		Message: plan.Message,
	}
}

func toJobDTO(jobEntity entities.CandidateJob) dto.Job {
	return dto.Job{
		ID:        jobEntity.ID,
		OrderID:   jobEntity.OrderID,
		StudentID: jobEntity.StudentID,
		JobType:   jobEntity.JobType.String(),
		Volume:    jobEntity.Volume,
		Price:     jobEntity.Price,
		Pickup: dto.Location{
			Lat:     jobEntity.Pickup.Lat,
			Lng:     jobEntity.Pickup.Lng,
			Address: jobEntity.Pickup.Address,
		},
		Dropoff: dto.Location{
			Lat:     jobEntity.Dropoff.Lat,
			Lng:     jobEntity.Dropoff.Lng,
			Address: jobEntity.Dropoff.Address,
		},
		ScheduledTime: jobEntity.ScheduledTime,
		Status:        jobEntity.Status.String(),
	}
}
