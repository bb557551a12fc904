package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeUnparseableDuration = 4001
	CodeInvalidTimeOfDay    = 4002
	CodeUnknownUnit         = 4003
	CodeDurationOverflow    = 4004
	CodeTimeOutOfRange      = 4005
	CodeInvalidRequest      = 4000

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrUnparseableDuration is returned when no unit keyword could be matched in a duration phrase
	ErrUnparseableDuration = errors.New("could not parse duration")

	// ErrInvalidTimeOfDay is returned when a time-of-day token is not numeric or out of range
	ErrInvalidTimeOfDay = errors.New("invalid time of day")

	// ErrUnknownUnit is returned when a conversion target unit is not supported
	ErrUnknownUnit = errors.New("unknown target unit")

	// ErrDurationOverflow is returned when a duration count does not fit 64-bit arithmetic
	ErrDurationOverflow = errors.New("duration component out of range")

	// ErrTimeOutOfRange is returned when arithmetic leaves the supported years 1..9999
	ErrTimeOutOfRange = errors.New("date value out of range")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternal is returned for unexpected failures caught at an operation boundary
	ErrInternal = errors.New("internal error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnparseableDuration):
		return CodeUnparseableDuration
	case errors.Is(err, ErrInvalidTimeOfDay):
		return CodeInvalidTimeOfDay
	case errors.Is(err, ErrUnknownUnit):
		return CodeUnknownUnit
	case errors.Is(err, ErrDurationOverflow):
		return CodeDurationOverflow
	case errors.Is(err, ErrTimeOutOfRange):
		return CodeTimeOutOfRange
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// DurationParseError names the phrase that yielded no duration components
type DurationParseError struct {
	Input string
}

// Error implements the error interface
func (e *DurationParseError) Error() string {
	return fmt.Sprintf("Could not parse duration: %s", e.Input)
}

// Is checks if the target error is an ErrUnparseableDuration
func (e *DurationParseError) Is(target error) bool {
	return target == ErrUnparseableDuration
}

// LogFields returns a map of fields for structured logging
func (e *DurationParseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "unparseable_duration",
		"input":      e.Input,
		"error_code": CodeUnparseableDuration,
	}
}

// NewDurationParseError creates a new unparseable duration error
func NewDurationParseError(input string) error {
	return &DurationParseError{Input: input}
}

// UnknownUnitError lists the supported units next to the rejected one
type UnknownUnitError struct {
	Unit      string
	Supported []string
}

// Error implements the error interface
func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("Unknown target unit: %s. Supported units: %s", e.Unit, strings.Join(e.Supported, ", "))
}

// Is checks if the target error is an ErrUnknownUnit
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}

// LogFields returns a map of fields for structured logging
func (e *UnknownUnitError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "unknown_unit",
		"unit":       e.Unit,
		"error_code": CodeUnknownUnit,
	}
}

// NewUnknownUnitError creates a new unknown unit error
func NewUnknownUnitError(unit string, supported []string) error {
	return &UnknownUnitError{Unit: unit, Supported: supported}
}

// OperationError wraps a failure with the public operation it interrupted
type OperationError struct {
	Operation string
	Err       error
}

// Error implements the error interface for OperationError
func (e *OperationError) Error() string {
	return fmt.Sprintf("Error %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *OperationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "operation_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewOperationError creates a detailed operation error
func NewOperationError(operation string, err error) error {
	return &OperationError{Operation: operation, Err: err}
}

// IsUnparseableDurationError checks if the error reports an unparseable duration
func IsUnparseableDurationError(err error) bool {
	return errors.Is(err, ErrUnparseableDuration)
}

// IsUnknownUnitError checks if the error reports an unsupported conversion unit
func IsUnknownUnitError(err error) bool {
	return errors.Is(err, ErrUnknownUnit)
}

// IsUserFacingError reports whether the error already carries its own report line
// and must not be prefixed with the operation name
func IsUserFacingError(err error) bool {
	return IsUnparseableDurationError(err) || IsUnknownUnitError(err)
}
