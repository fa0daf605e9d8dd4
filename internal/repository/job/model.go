package job

import "time"

type JobDB struct {
	ID             int64
	OrderID        string
	StudentID      string
	JobType        string
	Volume         float64
	Price          float64
	PickupLat      float64
	PickupLng      float64
	PickupAddress  string
	DropoffLat     float64
	DropoffLng     float64
	DropoffAddress string
	ScheduledTime  time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
