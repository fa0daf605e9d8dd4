package entities

import "time"

// Location координаты в градусах, адрес опционален.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

type CandidateJob struct {
	ID            int64
	OrderID       string
	StudentID     string
	JobType       JobTypeTag
	Volume        float64
	Price         float64
	Pickup        Location
	Dropoff       Location
	ScheduledTime time.Time
	Status        JobStatusType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type JobTypeTag string

const (
	JobTypeMoving   JobTypeTag = "moving"
	JobTypeDelivery JobTypeTag = "delivery"
	JobTypeStorage  JobTypeTag = "storage"
)

func (t JobTypeTag) String() string {
	return string(t)
}

type JobStatusType string

const (
	JobAvailable JobStatusType = "available"
	JobAssigned  JobStatusType = "assigned"
	JobCancelled JobStatusType = "cancelled"
	JobCompleted JobStatusType = "completed"
	JobExpired   JobStatusType = "expired"
)

func (s JobStatusType) String() string {
	return string(s)
}

type JobModify struct {
	ID            *int64
	OrderID       *string
	StudentID     *string
	JobType       *JobTypeTag
	Volume        *float64
	Price         *float64
	Pickup        *Location
	Dropoff       *Location
	ScheduledTime *time.Time
	Status        *JobStatusType
}
