package mover_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var moverModifyDTO dto.MoverCreate
	err := json.NewDecoder(r.Body).Decode(&moverModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	statusType := entities.MoverStatusType(moverModifyDTO.Status)
	moverModifyEntity := entities.MoverModify{
		Name:   &moverModifyDTO.Name,
		Phone:  &moverModifyDTO.Phone,
		Status: &statusType,
	}
	if moverModifyDTO.Availability != nil {
		availability := toAvailabilityEntity(moverModifyDTO.Availability)
		moverModifyEntity.Availability = &availability
	}

	id, err := h.service.CreateMover(r.Context(), moverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, mover.ErrMissingRequiredFields),
			errors.Is(err, mover.ErrInvalidName),
			errors.Is(err, mover.ErrInvalidPhone),
			errors.Is(err, mover.ErrInvalidStatus),
			errors.Is(err, mover.ErrInvalidAvailability):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, mover.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.MoverCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toAvailabilityEntity(availabilityDTO map[string][]dto.TimeRange) entities.AvailabilitySchedule {
	availability := make(entities.AvailabilitySchedule, len(availabilityDTO))
	for day, ranges := range availabilityDTO {
		timeRanges := make([]entities.TimeRange, len(ranges))
		for i, timeRange := range ranges {
			timeRanges[i] = entities.TimeRange{
				Start: timeRange.Start,
				End:   timeRange.End,
			}
		}
		availability[entities.Weekday(day)] = timeRanges
	}
	return availability
}
