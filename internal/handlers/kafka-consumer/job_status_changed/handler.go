package job_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	"service/pkg/logger"
)

type Handler struct {
	jobEventService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, jobEventService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		jobEventService:          jobEventService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("job.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("job.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event changedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("job.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("job.status.changed processing")

	jobModify := toJobModify(event)

	err = h.jobEventService.ProcessJobStatusChange(ctx, jobModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("job.status.changed handler context cancelled, message will be reprocessed")
			return true

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("job.status.changed handler failed to process job")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("job.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}

func toJobModify(event changedEvent) entities.JobModify {
	status := entities.JobStatusType(event.Status)
	jobModify := entities.JobModify{
		OrderID:       &event.OrderID,
		Status:        &status,
		StudentID:     event.StudentID,
		Volume:        event.Volume,
		Price:         event.Price,
		ScheduledTime: event.ScheduledTime,
	}

	if event.JobType != nil {
		jobType := entities.JobTypeTag(*event.JobType)
		jobModify.JobType = &jobType
	}
	if event.Pickup != nil {
		jobModify.Pickup = &entities.Location{
			Lat:     event.Pickup.Lat,
			Lng:     event.Pickup.Lng,
			Address: event.Pickup.Address,
		}
	}
	if event.Dropoff != nil {
		jobModify.Dropoff = &entities.Location{
			Lat:     event.Dropoff.Lat,
			Lng:     event.Dropoff.Lng,
			Address: event.Dropoff.Address,
		}
	}

	return jobModify
}
