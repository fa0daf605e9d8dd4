package entities

import (
	"time"
)

type Mover struct {
	ID           int64
	Name         string
	Phone        string
	Status       MoverStatusType
	Availability AvailabilitySchedule
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type MoverStatusType string

const (
	MoverAvailable MoverStatusType = "available"
	MoverPaused    MoverStatusType = "paused"
)

const DefaultMoverStatus = MoverAvailable

func (t MoverStatusType) String() string {
	return string(t)
}

// Weekday символьное представление дня недели в расписании мувера.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

func (d Weekday) String() string {
	return string(d)
}

// TimeRange интервал времени суток в формате "HH:MM", [Start, End).
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilitySchedule дни без записей (или с пустым списком интервалов)
// считаются недоступными.
type AvailabilitySchedule map[Weekday][]TimeRange

type MoverModify struct {
	ID           *int64
	Name         *string
	Phone        *string
	Status       *MoverStatusType
	Availability *AvailabilitySchedule
}
