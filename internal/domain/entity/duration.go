package entity

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/time-calculator/internal/domain/error"
)

// Duration maps units to the counts found in a phrase. Only units present in the
// phrase have keys; an empty Duration means nothing was recognized.
type Duration map[Unit]int64

// unitPatterns match "<digits><optional space><keyword>". Keywords are not bounded on the
// right, so "1 month" also counts as one minute and "2 decades" as two days.
var unitPatterns = map[Unit]*regexp.Regexp{
	UnitYears:   regexp.MustCompile(`(\d+)\s*(?:years|year|yrs|yr|y)`),
	UnitMonths:  regexp.MustCompile(`(\d+)\s*(?:months|month|mons|mon|mo)`),
	UnitWeeks:   regexp.MustCompile(`(\d+)\s*(?:weeks|week|wks|wk|w)`),
	UnitDays:    regexp.MustCompile(`(\d+)\s*(?:days|day|d)`),
	UnitHours:   regexp.MustCompile(`(\d+)\s*(?:hours|hour|hrs|hr|h)`),
	UnitMinutes: regexp.MustCompile(`(\d+)\s*(?:minutes|minute|mins|min|m)`),
	UnitSeconds: regexp.MustCompile(`(\d+)\s*(?:seconds|second|secs|sec|s)`),
}

// ParseDuration extracts the first count given for each unit in a free-text phrase.
// Repeated units are not summed: "2 days 3 days" yields days=2.
func ParseDuration(text string) (Duration, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	d := Duration{}
	for _, unit := range Units {
		m := unitPatterns[unit].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s", errs.ErrDurationOverflow, m[1], unit)
		}
		d[unit] = n
	}
	return d, nil
}

// Empty reports whether no unit was recognized
func (d Duration) Empty() bool {
	return len(d) == 0
}

// Count returns the count for a unit, zero when absent
func (d Duration) Count(u Unit) int64 {
	return d[u]
}

// Has reports whether the unit was present in the parsed phrase
func (d Duration) Has(u Unit) bool {
	_, ok := d[u]
	return ok
}

// FixedSeconds sums weeks through seconds into exact elapsed seconds
func (d Duration) FixedSeconds() (int64, error) {
	var total int64
	for _, unit := range Units {
		if unit.IsCalendar() {
			continue
		}
		var ok bool
		if total, ok = accumulate(total, d[unit], unitSeconds[unit]); !ok {
			return 0, errs.ErrDurationOverflow
		}
	}
	return total, nil
}

// ApproxSeconds sums every component using 30-day months and 365-day years
func (d Duration) ApproxSeconds() (int64, error) {
	var total int64
	for _, unit := range Units {
		var ok bool
		if total, ok = accumulate(total, d[unit], unitSeconds[unit]); !ok {
			return 0, errs.ErrDurationOverflow
		}
	}
	return total, nil
}

// accumulate returns total + count*size for non-negative operands, reporting overflow
func accumulate(total, count, size int64) (int64, bool) {
	if count != 0 && size > math.MaxInt64/count {
		return 0, false
	}
	product := count * size
	if total > math.MaxInt64-product {
		return 0, false
	}
	return total + product, true
}
