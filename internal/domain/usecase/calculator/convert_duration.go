package calculator

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/entity"
)

// ConvertDuration expresses a duration phrase in one unit. The unit may be singular or plural.
func (s *Service) ConvertDuration(ctx context.Context, durationText, targetUnit string) string {
	return s.run(opConversion, func() (string, error) {
		d, err := s.parseDuration(durationText)
		if err != nil {
			return "", err
		}

		total, err := d.ApproxSeconds()
		if err != nil {
			return "", err
		}

		unit := entity.NormalizeUnit(targetUnit)
		value, err := entity.ConvertSeconds(total, unit)
		if err != nil {
			return "", err
		}

		return entity.NewReport("Duration Conversion").
			Add("Original", durationText).
			Add(fmt.Sprintf("Converted to %ss", unit), humanize.FormatFloat("#,###.##", value)).
			Add("Total seconds", humanize.Comma(total)).
			Add("Breakdown", entity.FormatDuration(total)).
			String(), nil
	})
}
