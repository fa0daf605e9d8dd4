package mover_put

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
	var moverModifyDTO dto.MoverUpdate
	err := json.NewDecoder(r.Body).Decode(&moverModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	moverModifyEntity := entities.MoverModify{
		ID: &moverModifyDTO.ID,
	}

	// Опциональные параметры
	if moverModifyDTO.Name != nil {
		moverModifyEntity.Name = moverModifyDTO.Name
	}
	if moverModifyDTO.Phone != nil {
		moverModifyEntity.Phone = moverModifyDTO.Phone
	}
	if moverModifyDTO.Status != nil {
		statusType := entities.MoverStatusType(*moverModifyDTO.Status)
		moverModifyEntity.Status = &statusType
	}
	if moverModifyDTO.Availability != nil {
		availability := toAvailabilityEntity(*moverModifyDTO.Availability)
		moverModifyEntity.Availability = &availability
	}

	res, err := h.service.UpdateMover(r.Context(), moverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, mover.ErrMissingRequiredFields),
			errors.Is(err, mover.ErrInvalidMoverID),
			errors.Is(err, mover.ErrInvalidName),
			errors.Is(err, mover.ErrInvalidPhone),
			errors.Is(err, mover.ErrInvalidStatus),
			errors.Is(err, mover.ErrInvalidAvailability):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, mover.ErrMoverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, mover.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Mover{
		ID:           res.ID,
		Name:         res.Name,
		Phone:        res.Phone,
		Status:       res.Status.String(),
		Availability: toAvailabilityDTO(res.Availability),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
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
