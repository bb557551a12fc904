package entity

// Unit names a duration component
type Unit string

// Duration units, largest first
const (
	UnitYears   Unit = "years"
	UnitMonths  Unit = "months"
	UnitWeeks   Unit = "weeks"
	UnitDays    Unit = "days"
	UnitHours   Unit = "hours"
	UnitMinutes Unit = "minutes"
	UnitSeconds Unit = "seconds"
)

// Units lists every duration unit in extraction order
var Units = []Unit{UnitYears, UnitMonths, UnitWeeks, UnitDays, UnitHours, UnitMinutes, UnitSeconds}

// Approximate unit lengths in seconds. Months and years are fixed at 30 and 365 days
// for formatting and conversion; calendar arithmetic never uses them.
const (
	SecondsPerMinute int64 = 60
	SecondsPerHour   int64 = 60 * SecondsPerMinute
	SecondsPerDay    int64 = 24 * SecondsPerHour
	SecondsPerWeek   int64 = 7 * SecondsPerDay
	SecondsPerMonth  int64 = 30 * SecondsPerDay
	SecondsPerYear   int64 = 365 * SecondsPerDay
)

// unitSeconds maps each unit to its approximate length
var unitSeconds = map[Unit]int64{
	UnitYears:   SecondsPerYear,
	UnitMonths:  SecondsPerMonth,
	UnitWeeks:   SecondsPerWeek,
	UnitDays:    SecondsPerDay,
	UnitHours:   SecondsPerHour,
	UnitMinutes: SecondsPerMinute,
	UnitSeconds: 1,
}

// IsCalendar reports whether the unit has a context-dependent length
func (u Unit) IsCalendar() bool {
	return u == UnitYears || u == UnitMonths
}

// Singular returns the unit name without its plural suffix
func (u Unit) Singular() string {
	return string(u)[:len(u)-1]
}
