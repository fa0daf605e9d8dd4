package mover_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/dto"
	"service/internal/entities"
	"service/internal/service/mover"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	Id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	moverEntity, err := h.service.GetMover(r.Context(), Id)
	if err != nil {
		switch {
		case errors.Is(err, mover.ErrMoverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, mover.ErrInvalidMoverID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	moverDTO := dto.Mover{
		ID:           moverEntity.ID,
		Name:         moverEntity.Name,
		Phone:        moverEntity.Phone,
		Status:       moverEntity.Status.String(),
		Availability: toAvailabilityDTO(moverEntity.Availability),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(moverDTO)
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
