package job_status_changed

import "time"

// changedEvent схема сообщения топика job.status.changed.
// Поля работы присутствуют только в событиях со статусом available.
type changedEvent struct {
	OrderID       string          `json:"order_id"`
	Status        string          `json:"status"`
	StudentID     *string         `json:"student_id,omitempty"`
	JobType       *string         `json:"job_type,omitempty"`
	Volume        *float64        `json:"volume,omitempty"`
	Price         *float64        `json:"price,omitempty"`
	Pickup        *locationChange `json:"pickup,omitempty"`
	Dropoff       *locationChange `json:"dropoff,omitempty"`
	ScheduledTime *time.Time      `json:"scheduled_time,omitempty"`
}

type locationChange struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}
