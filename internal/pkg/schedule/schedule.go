package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"service/internal/entities"
)

const minutesPerHour = 60

// DayOf отображает календарный день недели в символьное значение расписания.
// default недостижим для корректного time.Time, оставлен как защитный
// фолбэк на воскресенье.
func DayOf(t time.Time) entities.Weekday {
	switch t.Weekday() {
	case time.Monday:
		return entities.Monday
	case time.Tuesday:
		return entities.Tuesday
	case time.Wednesday:
		return entities.Wednesday
	case time.Thursday:
		return entities.Thursday
	case time.Friday:
		return entities.Friday
	case time.Saturday:
		return entities.Saturday
	case time.Sunday:
		return entities.Sunday
	default:
		return entities.Sunday
	}
}

// WithinAvailability true если время суток t попадает хотя бы в один
// интервал [start, end) расписания для этого дня недели.
func WithinAvailability(t time.Time, s entities.AvailabilitySchedule) bool {
	if len(s) == 0 {
		return false
	}

	ranges, ok := s[DayOf(t)]
	if !ok || len(ranges) == 0 {
		return false
	}

	minuteOfDay := t.Hour()*minutesPerHour + t.Minute()

	for _, r := range ranges {
		start, err := ParseClock(r.Start)
		if err != nil {
			continue
		}
		end, err := ParseClock(r.End)
		if err != nil {
			continue
		}

		if minuteOfDay >= start && minuteOfDay < end {
			return true
		}
	}
	return false
}

// ParseClock разбирает "HH:MM" в минуты от начала суток.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock format: %q", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock hours %q: %w", clock, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock minutes %q: %w", clock, err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock out of range: %q", clock)
	}

	return hours*minutesPerHour + minutes, nil
}

// IsValidRange проверяет интервал расписания: оба конца парсятся и start < end.
func IsValidRange(r entities.TimeRange) bool {
	start, err := ParseClock(r.Start)
	if err != nil {
		return false
	}
	end, err := ParseClock(r.End)
	if err != nil {
		return false
	}
	return start < end
}
