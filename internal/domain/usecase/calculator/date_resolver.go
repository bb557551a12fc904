package calculator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/entity"
)

// SlashDateOrder selects how ambiguous N/N/YYYY dates are read
type SlashDateOrder string

const (
	// MonthFirst reads 3/4/2024 as March 4
	MonthFirst SlashDateOrder = "mdy"
	// DayFirst reads 3/4/2024 as April 3
	DayFirst SlashDateOrder = "dmy"
)

// ParseSlashDateOrder validates a configured slash date order
func ParseSlashDateOrder(s string) (SlashDateOrder, error) {
	switch SlashDateOrder(strings.ToLower(strings.TrimSpace(s))) {
	case MonthFirst, "":
		return MonthFirst, nil
	case DayFirst:
		return DayFirst, nil
	default:
		return MonthFirst, fmt.Errorf("invalid slash date order %q, must be %s or %s", s, MonthFirst, DayFirst)
	}
}

// Resolution names the rule that produced a resolved time
type Resolution string

const (
	ResolvedNow       Resolution = "now"
	ResolvedToday     Resolution = "today"
	ResolvedTomorrow  Resolution = "tomorrow"
	ResolvedYesterday Resolution = "yesterday"
	ResolvedISODate   Resolution = "iso_date"
	ResolvedSlashDate Resolution = "slash_date"
	ResolvedFallback  Resolution = "fallback"
)

var (
	isoDatePrefix   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	slashDatePrefix = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`)
)

// DateResolver turns relative keywords and simple absolute dates into a point in time
type DateResolver struct {
	slashLayout string
}

// NewDateResolver creates a resolver reading slash dates in the given order
func NewDateResolver(order SlashDateOrder) *DateResolver {
	layout := "1/2/2006"
	if order == DayFirst {
		layout = "2/1/2006"
	}
	return &DateResolver{slashLayout: layout}
}

// Resolve interprets text relative to anchor. Keywords are checked as substrings in the
// order now, today, tomorrow, yesterday; the first hit wins. Text that matches nothing
// resolves to the anchor itself.
func (r *DateResolver) Resolve(text string, anchor time.Time) (time.Time, Resolution) {
	s := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.Contains(s, "now"):
		return anchor, ResolvedNow
	case strings.Contains(s, "today"):
		return atClause(s, anchor), ResolvedToday
	case strings.Contains(s, "tomorrow"):
		return atClause(s, anchor.AddDate(0, 0, 1)), ResolvedTomorrow
	case strings.Contains(s, "yesterday"):
		return anchor.AddDate(0, 0, -1), ResolvedYesterday
	}

	if isoDatePrefix.MatchString(s) {
		if t, err := time.ParseInLocation(time.DateOnly, s, anchor.Location()); err == nil {
			return t, ResolvedISODate
		}
	} else if slashDatePrefix.MatchString(s) {
		if t, err := time.ParseInLocation(r.slashLayout, s, anchor.Location()); err == nil {
			return t, ResolvedSlashDate
		}
	}
	return anchor, ResolvedFallback
}

// atClause applies the time named after the first "at" to day. Without an "at" the day is
// returned as is; an unreadable time falls back to midnight.
func atClause(s string, day time.Time) time.Time {
	i := strings.Index(s, "at")
	if i < 0 {
		return day
	}
	clause := s[i+2:]
	if j := strings.Index(clause, "at"); j >= 0 {
		clause = clause[:j]
	}

	tod, err := entity.ParseTimeOfDay(clause)
	if err != nil {
		return entity.TimeOfDay{}.On(day)
	}
	return tod.On(day)
}
