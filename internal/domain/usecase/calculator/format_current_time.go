package calculator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ncruces/go-strftime"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/entity"
)

// FormatCurrentTime renders the current time with a strftime pattern such as "%Y-%m-%d %I:%M %p"
func (s *Service) FormatCurrentTime(ctx context.Context, pattern string) string {
	return s.run(opFormatting, func() (string, error) {
		now := s.timeProvider.Now()

		return entity.NewReport("Current Time Formatting").
			Add("Current time", entity.FormatDateTime(now)).
			Add(fmt.Sprintf("Formatted as %q", pattern), strftime.Format(pattern, now)).
			Add("ISO format", entity.FormatISO(now)).
			Add("Unix timestamp", strconv.FormatInt(now.Unix(), 10)).
			Add("Day of week", now.Weekday().String()).
			String(), nil
	})
}
