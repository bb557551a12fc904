package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/time-calculator/internal/domain/error"
)

// breakdownUnits are the components FormatDuration emits, largest first
var breakdownUnits = []Unit{UnitYears, UnitMonths, UnitDays, UnitHours, UnitMinutes, UnitSeconds}

// FormatDuration renders seconds as "1 year, 2 months, 3 days, ..." using approximate
// month and year lengths. Negative values get a leading "-". Zero renders as "0 seconds".
func FormatDuration(totalSeconds int64) string {
	sign := ""
	remaining := uint64(totalSeconds)
	if totalSeconds < 0 {
		sign = "-"
		remaining = uint64(-(totalSeconds + 1)) + 1
	}

	parts := make([]string, 0, len(breakdownUnits))
	for _, unit := range breakdownUnits {
		size := uint64(unitSeconds[unit])
		n := remaining / size
		remaining %= size
		if n > 0 || (unit == UnitSeconds && len(parts) == 0) {
			parts = append(parts, pluralize(n, unit))
		}
	}
	return sign + strings.Join(parts, ", ")
}

func pluralize(n uint64, unit Unit) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit.Singular())
	}
	return fmt.Sprintf("%d %s", n, unit)
}

// ConversionUnits lists the targets accepted by ConvertSeconds, smallest first
var ConversionUnits = []string{"second", "minute", "hour", "day", "week", "month", "year"}

var conversionSeconds = map[string]int64{
	"second": 1,
	"minute": SecondsPerMinute,
	"hour":   SecondsPerHour,
	"day":    SecondsPerDay,
	"week":   SecondsPerWeek,
	"month":  SecondsPerMonth,
	"year":   SecondsPerYear,
}

// NormalizeUnit lower-cases a unit name and strips every trailing "s"
func NormalizeUnit(unit string) string {
	return strings.TrimRight(strings.ToLower(unit), "s")
}

// ConvertSeconds expresses seconds in a singular unit name from ConversionUnits
func ConvertSeconds(totalSeconds int64, unit string) (float64, error) {
	size, ok := conversionSeconds[unit]
	if !ok {
		return 0, errs.NewUnknownUnitError(unit, ConversionUnits)
	}
	return float64(totalSeconds) / float64(size), nil
}
