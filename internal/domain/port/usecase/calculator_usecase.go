package usecase

import "context"

// CalculatorUseCase defines the public time calculator operations.
// Every method is total: failures come back as a descriptive report line, never as an error.
type CalculatorUseCase interface {
	// AddDuration adds a duration phrase to a base time ("" or "now" means the current time)
	AddDuration(ctx context.Context, durationText, baseText string) string

	// SubtractDuration subtracts a duration phrase from a base time
	SubtractDuration(ctx context.Context, durationText, baseText string) string

	// TimeDifference reports the signed difference between two resolved times
	TimeDifference(ctx context.Context, startText, endText string) string

	// ConvertDuration expresses a duration phrase in a single unit
	ConvertDuration(ctx context.Context, durationText, targetUnit string) string

	// FormatCurrentTime renders the current time with a strftime pattern
	FormatCurrentTime(ctx context.Context, pattern string) string

	// ParseToTimestamp resolves a date phrase to a Unix timestamp
	ParseToTimestamp(ctx context.Context, text string) string

	// TimeInfo reports calendar facts about the current local time
	TimeInfo(ctx context.Context, timezone string) string
}
