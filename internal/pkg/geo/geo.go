package geo

import (
	"math"

	"service/internal/entities"
)

const (
	// EarthRadiusKm средний радиус Земли.
	EarthRadiusKm = 6371.0

	// AverageSpeedKmh средняя скорость по городу, используется пока нет
	// внешнего роутинг-движка.
	AverageSpeedKmh = 40.0

	minutesPerHour = 60.0
)

// DistanceKm расстояние по дуге большого круга (haversine).
func DistanceKm(a, b entities.Location) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// TravelTimeMinutes время в пути при средней скорости AverageSpeedKmh.
func TravelTimeMinutes(distanceKm float64) float64 {
	return distanceKm / AverageSpeedKmh * minutesPerHour
}

// IsValid проверяет что координаты попадают в допустимые диапазоны.
func IsValid(loc entities.Location) bool {
	if loc.Lat < -90 || loc.Lat > 90 {
		return false
	}
	if loc.Lng < -180 || loc.Lng > 180 {
		return false
	}
	return true
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
