package mover

import (
	"strings"

	"service/internal/entities"
	"service/internal/pkg/schedule"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStatus(status string) bool {
	switch status {
	case "available", "paused":
		return true
	default:
		return false
	}
}

func isValidWeekday(day entities.Weekday) bool {
	switch day {
	case entities.Monday, entities.Tuesday, entities.Wednesday,
		entities.Thursday, entities.Friday, entities.Saturday, entities.Sunday:
		return true
	default:
		return false
	}
}

// isValidAvailability пустое расписание допустимо, это "нигде не доступен".
func isValidAvailability(s entities.AvailabilitySchedule) bool {
	for day, ranges := range s {
		if !isValidWeekday(day) {
			return false
		}
		for _, r := range ranges {
			if !schedule.IsValidRange(r) {
				return false
			}
		}
	}
	return true
}
