package calculator

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/entity"
)

// TimeDifference reports end minus start, both resolved against one anchor moment
func (s *Service) TimeDifference(ctx context.Context, startText, endText string) string {
	return s.run(opDifference, func() (string, error) {
		anchor := s.timeProvider.Now()
		start, startDescription := s.resolveTime(startText, anchor)
		end, endDescription := s.resolveTime(endText, anchor)

		total := entity.ElapsedSeconds(start, end)
		magnitude, direction := total, "later"
		if total < 0 {
			magnitude, direction = -total, "earlier"
		}
		difference := entity.FormatDuration(magnitude)

		s.logger.Info("Time difference calculated", map[string]any{
			"start":         entity.FormatDateTime(start),
			"end":           entity.FormatDateTime(end),
			"total_seconds": total,
		})

		return entity.NewReport("Time Difference Calculation").
			Add("Start time", fmt.Sprintf("%s (%s)", entity.FormatDateTime(start), startDescription)).
			Add("End time", fmt.Sprintf("%s (%s)", entity.FormatDateTime(end), endDescription)).
			Add("Difference", difference).
			Add("Direction", fmt.Sprintf("End time is %s %s than start time", difference, direction)).
			Add("Total seconds", humanize.Comma(total)).
			Add("Total minutes", humanize.Comma(entity.FloorDiv(total, entity.SecondsPerMinute))).
			Add("Total hours", humanize.Comma(entity.FloorDiv(total, entity.SecondsPerHour))).
			Add("Total days", humanize.Comma(entity.FloorDiv(total, entity.SecondsPerDay))).
			String(), nil
	})
}
