package calculator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ncruces/go-strftime"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/entity"
)

// TimeInfo reports calendar facts about the current local time. A timezone name is
// acknowledged but not applied.
func (s *Service) TimeInfo(ctx context.Context, timezone string) string {
	return s.run(opTimeInfo, func() (string, error) {
		now := s.timeProvider.Now()

		report := entity.NewReport("Comprehensive Time Information (Local time)")
		dateTime := entity.FormatDateTime(now)
		if timezone != "" {
			report = entity.NewReport("Time Information").
				Prefix(fmt.Sprintf("**Note:** Timezone conversion is not supported, %q was not applied. Showing local time.", timezone))
			dateTime += " (Local time)"
		}

		return report.
			Add("Date/time", dateTime).
			Add("12-hour format", strftime.Format("%I:%M:%S %p", now)).
			Add("Day of week", now.Weekday().String()).
			Add("Month", now.Month().String()).
			Add("Week of year", strftime.Format("%U", now)).
			Add("Day of year", strftime.Format("%j", now)).
			Add("Unix timestamp", strconv.FormatInt(now.Unix(), 10)).
			Add("ISO format", entity.FormatISO(now)).
			String(), nil
	})
}
