package jobs_get

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
	jobEntities, err := h.service.ListAvailableJobs(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	jobDTOs := make([]dto.Job, len(jobEntities))
	for i, jobEntity := range jobEntities {
		jobDTOs[i] = toJobDTO(jobEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(jobDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
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
