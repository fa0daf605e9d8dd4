package planner

import "service/internal/entities"

const minutesPerHour = 60.0

// aggregate сводные метрики маршрута. Пустой маршрут дает нулевые метрики,
// деления на ноль нет.
func aggregate(route []entities.RouteStop) entities.RouteMetrics {
	metrics := entities.RouteMetrics{
		TotalJobs: len(route),
	}

	for _, stop := range route {
		metrics.TotalEarnings += stop.Job.Price
		metrics.TotalDistanceKm += stop.DistanceFromPreviousKm
		metrics.TotalDurationMinutes += stop.EstimatedDurationMinutes + stop.TravelTimeFromPreviousMins
	}

	if metrics.TotalDurationMinutes > 0 {
		metrics.EarningsPerHour = metrics.TotalEarnings / (metrics.TotalDurationMinutes / minutesPerHour)
	}

	return metrics
}
