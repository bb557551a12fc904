package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateResolver_Resolve(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	resolver := NewDateResolver(MonthFirst)

	tests := []struct {
		name  string
		input string
		want  time.Time
		how   Resolution
	}{
		{"now", "now", anchor, ResolvedNow},
		{"now inside a phrase", "right NOW please", anchor, ResolvedNow},
		{"now as a substring", "snowstorm", anchor, ResolvedNow},
		{"today", "today", anchor, ResolvedToday},
		{"today at pm time", "today at 3pm", time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC), ResolvedToday},
		{"today at am time", "Today at 9:45 AM", time.Date(2024, 3, 15, 9, 45, 0, 0, time.UTC), ResolvedToday},
		{"today at unreadable time", "today at noon", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ResolvedToday},
		{"tomorrow", "tomorrow", time.Date(2024, 3, 16, 10, 30, 45, 0, time.UTC), ResolvedTomorrow},
		{"tomorrow at 24 hour time", "tomorrow at 15:30", time.Date(2024, 3, 16, 15, 30, 0, 0, time.UTC), ResolvedTomorrow},
		{"tomorrow at unreadable time", "tomorrow at teatime", time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), ResolvedTomorrow},
		{"yesterday", "yesterday", time.Date(2024, 3, 14, 10, 30, 45, 0, time.UTC), ResolvedYesterday},
		{"yesterday ignores at", "yesterday at 3pm", time.Date(2024, 3, 14, 10, 30, 45, 0, time.UTC), ResolvedYesterday},
		{"today wins over tomorrow", "tomorrow, not today", anchor, ResolvedToday},
		{"today or tomorrow", "today or tomorrow", anchor, ResolvedToday},
		{"iso date", "2024-01-05", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), ResolvedISODate},
		{"iso date with trailing text", "2024-01-05 extra", anchor, ResolvedFallback},
		{"invalid iso date", "2024-02-30", anchor, ResolvedFallback},
		{"slash date month first", "3/4/2024", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), ResolvedSlashDate},
		{"padded slash date", "12/25/2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), ResolvedSlashDate},
		{"day first slash date is not read", "25/12/2024", anchor, ResolvedFallback},
		{"unsupported phrase", "next friday", anchor, ResolvedFallback},
		{"empty", "", anchor, ResolvedFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, how := resolver.Resolve(tt.input, anchor)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.how, how)
		})
	}
}

func TestDateResolver_DayFirst(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	resolver := NewDateResolver(DayFirst)

	got, how := resolver.Resolve("3/4/2024", anchor)
	assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, ResolvedSlashDate, how)

	got, how = resolver.Resolve("25/12/2024", anchor)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, ResolvedSlashDate, how)

	_, how = resolver.Resolve("12/25/2024", anchor)
	assert.Equal(t, ResolvedFallback, how)
}

func TestDateResolver_UsesAnchorLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	anchor := time.Date(2024, 3, 15, 10, 30, 0, 0, loc)

	got, _ := NewDateResolver(MonthFirst).Resolve("2024-01-01", anchor)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, int64(1704085200), got.Unix())
}

func TestParseSlashDateOrder(t *testing.T) {
	order, err := ParseSlashDateOrder("")
	require.NoError(t, err)
	assert.Equal(t, MonthFirst, order)

	order, err = ParseSlashDateOrder("DMY")
	require.NoError(t, err)
	assert.Equal(t, DayFirst, order)

	_, err = ParseSlashDateOrder("ymd")
	assert.Error(t, err)
}
