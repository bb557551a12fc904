package calculator

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/time-calculator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
)

// Operation names used in "Error <operation>: ..." report lines
const (
	opAddition    = "calculating time addition"
	opSubtraction = "calculating time subtraction"
	opDifference  = "calculating time difference"
	opConversion  = "converting duration"
	opFormatting  = "formatting current time"
	opParsing     = "parsing datetime string"
	opTimeInfo    = "getting time info"
)

// currentTimeDescription labels base times that were not resolved from text
const currentTimeDescription = "current time"

// Service implements the calculator use case
type Service struct {
	parser       coreport.DurationParser
	resolver     *DateResolver
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCalculatorService creates a new calculator service instance
func NewCalculatorService(
	parser coreport.DurationParser,
	resolver *DateResolver,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		parser:       parser,
		resolver:     resolver,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// run executes an operation body and converts its error, or a panic, into a report line
func (s *Service) run(operation string, body func() (string, error)) (report string) {
	defer func() {
		if r := recover(); r != nil {
			opErr := &errs.OperationError{Operation: operation, Err: fmt.Errorf("%w: %v", errs.ErrInternal, r)}
			s.logger.Error("Operation panicked", opErr.LogFields())
			report = opErr.Error()
		}
	}()

	out, err := body()
	if err == nil {
		s.logger.Debug("Operation completed", map[string]any{
			"operation": operation,
		})
		return out
	}

	if errs.IsUserFacingError(err) {
		s.logger.Warn("Operation rejected input", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return err.Error()
	}

	opErr := &errs.OperationError{Operation: operation, Err: err}
	s.logger.Error("Operation failed", opErr.LogFields())
	return opErr.Error()
}

// isCurrentTime reports whether text asks for the anchor itself
func isCurrentTime(text string) bool {
	switch strings.ToLower(text) {
	case "", "now", currentTimeDescription:
		return true
	}
	return false
}

// resolveTime resolves text against the anchor and returns the description used in reports
func (s *Service) resolveTime(text string, anchor time.Time) (time.Time, string) {
	if isCurrentTime(text) {
		return anchor, currentTimeDescription
	}

	t, how := s.resolver.Resolve(text, anchor)
	s.logger.Debug("Resolved date phrase", map[string]any{
		"input":      text,
		"resolution": string(how),
		"resolved":   t.Format(time.RFC3339),
	})
	return t, text
}
