package entities

import "time"

// RouteQuery входные данные планировщика, валидируются на границе (REST).
type RouteQuery struct {
	MoverID         int64
	CurrentLocation Location

	// MaxDurationMinutes бюджет активного времени (поездки + работа),
	// nil - без ограничения.
	MaxDurationMinutes *float64
}

type RouteStop struct {
	Job CandidateJob

	EstimatedStart             time.Time
	EstimatedDurationMinutes   float64
	DistanceFromPreviousKm     float64
	TravelTimeFromPreviousMins float64
}

type RouteMetrics struct {
	TotalEarnings        float64
	TotalJobs            int
	TotalDistanceKm      float64
	TotalDurationMinutes float64
	EarningsPerHour      float64
}

type RoutePlan struct {
	Route         []RouteStop
	Metrics       RouteMetrics
	StartLocation Location
	Message       string
}
