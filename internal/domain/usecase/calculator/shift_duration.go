package calculator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/time-calculator/internal/domain/error"
)

// AddDuration adds a duration phrase to a base time
func (s *Service) AddDuration(ctx context.Context, durationText, baseText string) string {
	return s.run(opAddition, func() (string, error) {
		return s.shift(durationText, baseText, entity.Forward)
	})
}

// SubtractDuration subtracts a duration phrase from a base time
func (s *Service) SubtractDuration(ctx context.Context, durationText, baseText string) string {
	return s.run(opSubtraction, func() (string, error) {
		return s.shift(durationText, baseText, entity.Backward)
	})
}

// parseDuration parses a phrase and rejects phrases without any recognized unit
func (s *Service) parseDuration(text string) (entity.Duration, error) {
	d, err := s.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	if d.Empty() {
		return nil, errs.NewDurationParseError(text)
	}
	return d, nil
}

func (s *Service) shift(durationText, baseText string, dir entity.Direction) (string, error) {
	anchor := s.timeProvider.Now()
	base, description := s.resolveTime(baseText, anchor)

	d, err := s.parseDuration(durationText)
	if err != nil {
		return "", err
	}

	result, err := entity.ApplyDuration(base, d, dir)
	if err != nil {
		return "", err
	}

	title, label := "Time Addition Result", "Duration added"
	if dir == entity.Backward {
		title, label = "Time Subtraction Result", "Duration subtracted"
	}

	s.logger.Info("Duration applied", map[string]any{
		"duration":  durationText,
		"direction": int(dir),
		"base":      entity.FormatDateTime(base),
		"result":    entity.FormatDateTime(result),
	})

	return entity.NewReport(title).
		Add("Base time", fmt.Sprintf("%s (%s)", entity.FormatDateTime(base), description)).
		Add(label, durationText).
		Add("Result", entity.FormatDateTime(result)).
		Add("Day of week", result.Weekday().String()).
		Add("Unix timestamp", strconv.FormatInt(result.Unix(), 10)).
		String(), nil
}
