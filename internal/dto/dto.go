// Package dto содержит транспортные модели REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Mover struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Phone        string                 `json:"phone"`
	Status       string                 `json:"status"`
	Availability map[string][]TimeRange `json:"availability"`
}

type MoverCreate struct {
	Name         string                 `json:"name"`
	Phone        string                 `json:"phone"`
	Status       string                 `json:"status"`
	Availability map[string][]TimeRange `json:"availability,omitempty"`
}

type MoverCreateResponse struct {
	ID int64 `json:"id"`
}

type MoverUpdate struct {
	ID           int64                   `json:"id"`
	Name         *string                 `json:"name,omitempty"`
	Phone        *string                 `json:"phone,omitempty"`
	Status       *string                 `json:"status,omitempty"`
	Availability *map[string][]TimeRange `json:"availability,omitempty"`
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// LocationInput отличается от Location указателями на координаты:
// отсутствующее поле нужно отличать от нулевого значения.
type LocationInput struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address string   `json:"address,omitempty"`
}

type Job struct {
	ID            int64     `json:"id"`
	OrderID       string    `json:"order_id"`
	StudentID     string    `json:"student_id"`
	JobType       string    `json:"job_type"`
	Volume        float64   `json:"volume"`
	Price         float64   `json:"price"`
	Pickup        Location  `json:"pickup"`
	Dropoff       Location  `json:"dropoff"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `json:"status"`
}

type RoutePlanRequest struct {
	MoverID            *int64         `json:"mover_id"`
	CurrentLocation    *LocationInput `json:"current_location"`
	MaxDurationMinutes *float64       `json:"max_duration_minutes,omitempty"`
}

type RouteStop struct {
	Job                        Job       `json:"job"`
	EstimatedStart             time.Time `json:"estimated_start"`
	EstimatedDurationMinutes   float64   `json:"estimated_duration_minutes"`
	DistanceFromPreviousKm     float64   `json:"distance_from_previous_km"`
	TravelTimeFromPreviousMins float64   `json:"travel_time_from_previous_mins"`
}

type RouteMetrics struct {
	TotalEarnings        float64 `json:"total_earnings"`
	TotalJobs            int     `json:"total_jobs"`
	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
	EarningsPerHour      float64 `json:"earnings_per_hour"`
}

type RoutePlanResponse struct {
	Route         []RouteStop  `json:"route"`
	Metrics       RouteMetrics `json:"metrics"`
	StartLocation Location     `json:"start_location"`
	Message       string       `json:"message"`
}
