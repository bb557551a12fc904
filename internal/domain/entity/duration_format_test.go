package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/time-calculator/internal/domain/error"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0 seconds"},
		{1, "1 second"},
		{59, "59 seconds"},
		{60, "1 minute"},
		{-3661, "-1 hour, 1 minute, 1 second"},
		{9000, "2 hours, 30 minutes"},
		{90061, "1 day, 1 hour, 1 minute, 1 second"},
		{345600, "4 days"},
		{36720000, "1 year, 2 months"},
		{SecondsPerYear + SecondsPerMonth + 2*SecondsPerDay, "1 year, 1 month, 2 days"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}

func TestFormatDuration_MinInt64(t *testing.T) {
	got := FormatDuration(math.MinInt64)
	assert.Equal(t, "-", got[:1])
	assert.Contains(t, got, "years")
}

func TestNormalizeUnit(t *testing.T) {
	assert.Equal(t, "hour", NormalizeUnit("Hours"))
	assert.Equal(t, "minute", NormalizeUnit("minute"))
	assert.Equal(t, "second", NormalizeUnit("SECONDSS"))
	assert.Equal(t, "", NormalizeUnit("s"))
}

func TestConvertSeconds(t *testing.T) {
	tests := []struct {
		unit string
		want float64
	}{
		{"second", 5400},
		{"minute", 90},
		{"hour", 1.5},
		{"day", 0.0625},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, err := ConvertSeconds(5400, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("month and year use approximate lengths", func(t *testing.T) {
		got, err := ConvertSeconds(SecondsPerYear, "month")
		require.NoError(t, err)
		assert.InDelta(t, 365.0/30.0, got, 1e-9)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := ConvertSeconds(60, "fortnight")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnknownUnit)
		assert.Equal(t, "Unknown target unit: fortnight. Supported units: second, minute, hour, day, week, month, year", err.Error())
	})
}
