package calculator

import (
	"context"
	"strconv"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/entity"
)

// ParseToTimestamp resolves a date phrase such as "tomorrow at 3pm" to a Unix timestamp
func (s *Service) ParseToTimestamp(ctx context.Context, text string) string {
	return s.run(opParsing, func() (string, error) {
		parsed, description := s.resolveTime(text, s.timeProvider.Now())

		return entity.NewReport("Natural Language Date/Time Parsing").
			Add("Input", `"`+description+`"`).
			Add("Parsed as", entity.FormatDateTime(parsed)).
			Add("Day of week", parsed.Weekday().String()).
			Add("Unix timestamp", strconv.FormatInt(parsed.Unix(), 10)).
			Add("ISO format", entity.FormatISO(parsed)).
			String(), nil
	})
}
