package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/time-calculator/internal/domain/error"
)

// TimeOfDay is a wall-clock hour and minute without a date
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay reads compact tokens such as "3pm", "15:30" or "9:45 am"
func ParseTimeOfDay(token string) (TimeOfDay, error) {
	token = strings.ToLower(strings.TrimSpace(token))

	isPM := strings.Contains(token, "pm")
	meridiem := isPM || strings.Contains(token, "am")
	if meridiem {
		token = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(token, "pm", ""), "am", ""))
	}

	hour, minute, err := splitClock(token)
	if err != nil {
		return TimeOfDay{}, err
	}

	if meridiem {
		if isPM && hour != 12 {
			hour += 12
		} else if !isPM && hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d must be in 0..23", errs.ErrInvalidTimeOfDay, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d must be in 0..59", errs.ErrInvalidTimeOfDay, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// splitClock parses "H" or "H:M"; anything after a second colon is ignored
func splitClock(token string) (int, int, error) {
	parts := strings.Split(token, ":")
	hour, err := atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minute := 0
	if len(parts) > 1 {
		if minute, err = atoi(parts[1]); err != nil {
			return 0, 0, err
		}
	}
	return hour, minute, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidTimeOfDay, s)
	}
	return n, nil
}

// On places the time of day on the date of t, in t's location, with zero seconds
func (tod TimeOfDay) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), tod.Hour, tod.Minute, 0, 0, t.Location())
}

// String renders the time as HH:MM
func (tod TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", tod.Hour, tod.Minute)
}
