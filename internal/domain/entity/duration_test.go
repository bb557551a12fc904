package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/time-calculator/internal/domain/error"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Duration
	}{
		{"hours and minutes", "2 hours 30 minutes", Duration{UnitHours: 2, UnitMinutes: 30}},
		{"days", "3 days", Duration{UnitDays: 3}},
		{"years and months", "1 year 2 months", Duration{UnitYears: 1, UnitMonths: 2, UnitMinutes: 2}},
		{"month also reads as minutes", "1 month", Duration{UnitMonths: 1, UnitMinutes: 1}},
		{"keyword inside a word", "2 decades", Duration{UnitDays: 2}},
		{"compact form", "2h30m", Duration{UnitHours: 2, UnitMinutes: 30}},
		{"upper case and padding", "  5 MINS ", Duration{UnitMinutes: 5}},
		{"weeks and days", "1w 2d", Duration{UnitWeeks: 1, UnitDays: 2}},
		{"abbreviated years and months", "1 yr 6 mo", Duration{UnitYears: 1, UnitMonths: 6, UnitMinutes: 6}},
		{"seconds", "10 secs", Duration{UnitSeconds: 10}},
		{"first occurrence wins", "2 days 3 days", Duration{UnitDays: 2}},
		{"minus sign is ignored", "-5 days", Duration{UnitDays: 5}},
		{"all units", "1y 3w 4d 5h 6m 7s 2mo", Duration{
			UnitYears: 1, UnitMonths: 2, UnitWeeks: 3, UnitDays: 4, UnitHours: 5, UnitMinutes: 6, UnitSeconds: 7,
		}},
		{"no units", "soon", Duration{}},
		{"empty", "", Duration{}},
		{"digits without unit", "42", Duration{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration_SynonymsAgree(t *testing.T) {
	synonyms := map[Unit][]string{
		UnitYears:   {"year", "years", "yr", "yrs", "y"},
		UnitMonths:  {"month", "months", "mon", "mons", "mo"},
		UnitWeeks:   {"week", "weeks", "wk", "wks", "w"},
		UnitDays:    {"day", "days", "d"},
		UnitHours:   {"hour", "hours", "hr", "hrs", "h"},
		UnitMinutes: {"minute", "minutes", "min", "mins", "m"},
		UnitSeconds: {"second", "seconds", "sec", "secs", "s"},
	}

	for unit, keywords := range synonyms {
		for _, kw := range keywords {
			for _, input := range []string{"2" + kw, "2 " + kw} {
				t.Run(input, func(t *testing.T) {
					got, err := ParseDuration(input)
					require.NoError(t, err)
					assert.Equal(t, int64(2), got[unit])
				})
			}
		}
	}
}

func TestParseDuration_Overflow(t *testing.T) {
	_, err := ParseDuration("99999999999999999999 days")
	assert.ErrorIs(t, err, errs.ErrDurationOverflow)
}

func TestDuration_Accessors(t *testing.T) {
	d := Duration{UnitDays: 0, UnitHours: 3}

	assert.False(t, d.Empty())
	assert.True(t, d.Has(UnitDays))
	assert.False(t, d.Has(UnitYears))
	assert.Equal(t, int64(3), d.Count(UnitHours))
	assert.Equal(t, int64(0), d.Count(UnitMinutes))
	assert.True(t, Duration{}.Empty())
}

func TestDuration_FixedSeconds(t *testing.T) {
	d := Duration{UnitMonths: 5, UnitWeeks: 1, UnitDays: 1, UnitHours: 1, UnitMinutes: 1, UnitSeconds: 1}

	got, err := d.FixedSeconds()
	require.NoError(t, err)
	assert.Equal(t, int64(694861), got)
}

func TestDuration_ApproxSeconds(t *testing.T) {
	t.Run("uses 365 day years and 30 day months", func(t *testing.T) {
		got, err := Duration{UnitYears: 1, UnitMonths: 1}.ApproxSeconds()
		require.NoError(t, err)
		assert.Equal(t, int64(34128000), got)
	})

	t.Run("reports overflow", func(t *testing.T) {
		_, err := Duration{UnitYears: 1 << 40}.ApproxSeconds()
		assert.ErrorIs(t, err, errs.ErrDurationOverflow)
	})
}
