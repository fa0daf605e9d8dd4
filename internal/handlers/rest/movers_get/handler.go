package movers_get

import (
	"encoding/json"
	"net/http"

	"service/internal/dto"
	"service/internal/entities"
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
	moverEntities, err := h.service.GetMovers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	moverDTOs := make([]dto.Mover, len(moverEntities))
	for i, moverEntity := range moverEntities {
		moverDTOs[i].ID = moverEntity.ID
		moverDTOs[i].Name = moverEntity.Name
		moverDTOs[i].Phone = moverEntity.Phone
		moverDTOs[i].Status = moverEntity.Status.String()
		moverDTOs[i].Availability = toAvailabilityDTO(moverEntity.Availability)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(moverDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toAvailabilityDTO(availability entities.AvailabilitySchedule) map[string][]dto.TimeRange {
	availabilityDTO := make(map[string][]dto.TimeRange, len(availability))
	for day, ranges := range availability {
		timeRanges := make([]dto.TimeRange, len(ranges))
		for i, timeRange := range ranges {
			timeRanges[i] = dto.TimeRange{
				Start: timeRange.Start,
				End:   timeRange.End,
			}
		}
		availabilityDTO[day.String()] = timeRanges
	}
	return availabilityDTO
}
