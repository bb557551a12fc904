package entity

import (
	"fmt"
	"math"
	"time"

	errs "github.com/amirhossein-jamali/time-calculator/internal/domain/error"
)

// Supported calendar range
const (
	MinYear = 1
	MaxYear = 9999
)

// Wall-clock Unix bounds of the supported range, padded by a day
var (
	minUnix = time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() - SecondsPerDay
	maxUnix = time.Date(MaxYear+1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() + SecondsPerDay
)

// Direction of a duration applied to a point in time
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// AddMonths moves t by a number of months, clamping the day to the end of the target month.
// Time of day and location are preserved.
func AddMonths(t time.Time, months int64) (time.Time, error) {
	total := int64(t.Month()) - 1 + months
	if months > 0 && total < 0 || months < 0 && total > 0 {
		return time.Time{}, errs.ErrDurationOverflow
	}

	year := int64(t.Year()) + floorDiv(total, 12)
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year %d", errs.ErrTimeOutOfRange, year)
	}
	month := time.Month(floorMod(total, 12) + 1)

	day := t.Day()
	if last := DaysIn(int(year), month); day > last {
		day = last
	}
	return time.Date(int(year), month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
}

// ApplyDuration adds (Forward) or subtracts (Backward) a duration. Years are applied first,
// then months, each as its own clamped month step; the fixed-length remainder is applied
// last as elapsed time.
func ApplyDuration(t time.Time, d Duration, dir Direction) (time.Time, error) {
	result := t

	if d.Has(UnitYears) {
		years := d.Count(UnitYears)
		if years > math.MaxInt64/12 {
			return time.Time{}, errs.ErrDurationOverflow
		}
		var err error
		if result, err = AddMonths(result, int64(dir)*years*12); err != nil {
			return time.Time{}, err
		}
	}
	if d.Has(UnitMonths) {
		var err error
		if result, err = AddMonths(result, int64(dir)*d.Count(UnitMonths)); err != nil {
			return time.Time{}, err
		}
	}

	offset, err := d.FixedSeconds()
	if err != nil {
		return time.Time{}, err
	}
	return AddSeconds(result, int64(dir)*offset)
}

// AddSeconds shifts the wall clock of t by seconds. Zone offset changes between t and the
// result are not counted, so one day always moves to the same clock time on the next date.
func AddSeconds(t time.Time, seconds int64) (time.Time, error) {
	base := wallClock(t).Unix()
	if seconds > 0 && base > math.MaxInt64-seconds || seconds < 0 && base < math.MinInt64-seconds {
		return time.Time{}, errs.ErrTimeOutOfRange
	}
	target := base + seconds
	if target < minUnix || target > maxUnix {
		return time.Time{}, errs.ErrTimeOutOfRange
	}
	result := time.Unix(target, int64(t.Nanosecond())).UTC()
	if y := result.Year(); y < MinYear || y > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year %d", errs.ErrTimeOutOfRange, y)
	}
	return inLocation(result, t.Location()), nil
}

// ElapsedSeconds returns end minus start in whole seconds of wall-clock time, truncated toward zero
func ElapsedSeconds(start, end time.Time) int64 {
	ws, we := wallClock(start), wallClock(end)
	secs := we.Unix() - ws.Unix()
	nanos := we.Nanosecond() - ws.Nanosecond()
	switch {
	case secs > 0 && nanos < 0:
		secs--
	case secs < 0 && nanos > 0:
		secs++
	}
	return secs
}

// wallClock reads the date and clock fields of t as if they were UTC
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// inLocation puts the date and clock fields of w into loc
func inLocation(w time.Time, loc *time.Location) time.Time {
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), loc)
}

// DaysIn returns the number of days in the month of the given year
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FloorDiv divides rounding toward negative infinity
func FloorDiv(a, b int64) int64 {
	return floorDiv(a, b)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
