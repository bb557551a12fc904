package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrUnparseableDuration.Error() != "could not parse duration" {
		t.Errorf("ErrUnparseableDuration has unexpected message: %s", ErrUnparseableDuration.Error())
	}
	if ErrTimeOutOfRange.Error() != "date value out of range" {
		t.Errorf("ErrTimeOutOfRange has unexpected message: %s", ErrTimeOutOfRange.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"UnparseableDuration", ErrUnparseableDuration, 4001},
		{"InvalidTimeOfDay", ErrInvalidTimeOfDay, 4002},
		{"UnknownUnit", ErrUnknownUnit, 4003},
		{"DurationOverflow", ErrDurationOverflow, 4004},
		{"TimeOutOfRange", ErrTimeOutOfRange, 4005},
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrTimeOutOfRange), 4005},
		{"TypedParseError", NewDurationParseError("soon"), 4001},
		{"TypedUnitError", NewUnknownUnitError("fortnight", nil), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestDurationParseError(t *testing.T) {
	err := NewDurationParseError("a while")

	expectedErrMsg := "Could not parse duration: a while"
	if err.Error() != expectedErrMsg {
		t.Errorf("DurationParseError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrUnparseableDuration) {
		t.Errorf("errors.Is(err, ErrUnparseableDuration) = false, want true")
	}

	if !IsUserFacingError(err) {
		t.Errorf("IsUserFacingError(err) = false, want true")
	}
}

func TestUnknownUnitError(t *testing.T) {
	err := NewUnknownUnitError("fortnight", []string{"second", "minute"})

	expectedErrMsg := "Unknown target unit: fortnight. Supported units: second, minute"
	if err.Error() != expectedErrMsg {
		t.Errorf("UnknownUnitError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsUnknownUnitError(err) {
		t.Errorf("IsUnknownUnitError(err) = false, want true")
	}
}

func TestOperationError(t *testing.T) {
	err := NewOperationError("calculating time addition", ErrTimeOutOfRange)

	expectedErrMsg := "Error calculating time addition: date value out of range"
	if err.Error() != expectedErrMsg {
		t.Errorf("OperationError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrTimeOutOfRange) {
		t.Errorf("errors.Is(err, ErrTimeOutOfRange) = false, want true")
	}

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("errors.As failed: not an *OperationError")
	}

	fields := opErr.LogFields()
	if fields["operation"] != "calculating time addition" {
		t.Errorf("operation field = %v, want calculating time addition", fields["operation"])
	}
	if fields["error_code"] != CodeTimeOutOfRange {
		t.Errorf("error_code field = %v, want %d", fields["error_code"], CodeTimeOutOfRange)
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsUnparseableDurationError(ErrUnknownUnit) {
		t.Errorf("IsUnparseableDurationError(ErrUnknownUnit) = true, want false")
	}

	if IsUserFacingError(ErrTimeOutOfRange) {
		t.Errorf("IsUserFacingError(ErrTimeOutOfRange) = true, want false")
	}

	wrapped := fmt.Errorf("wrapped: %w", NewUnknownUnitError("x", nil))
	if !IsUnknownUnitError(wrapped) {
		t.Errorf("IsUnknownUnitError(wrapped) = false, want true")
	}
}
