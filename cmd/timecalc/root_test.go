package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/port/usecase"
	muse "github.com/amirhossein-jamali/time-calculator/mocks/port/usecase"
)

func run(t *testing.T, calc *muse.MockCalculatorUseCase, args ...string) (string, error) {
	t.Helper()
	build := func(bool) (usecase.CalculatorUseCase, defaults, error) {
		return calc, defaults{format: "%H:%M:%S", targetUnit: "minutes"}, nil
	}

	cmd := newRootCmd(build)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		setup func(calc *muse.MockCalculatorUseCase)
	}{
		{
			name: "add joins words",
			args: []string{"add", "2", "hours", "--base", "tomorrow"},
			setup: func(calc *muse.MockCalculatorUseCase) {
				calc.EXPECT().AddDuration(mock.Anything, "2 hours", "tomorrow").Return("report").Once()
			},
		},
		{
			name: "subtract",
			args: []string{"subtract", "1 month"},
			setup: func(calc *muse.MockCalculatorUseCase) {
				calc.EXPECT().SubtractDuration(mock.Anything, "1 month", "").Return("report").Once()
			},
		},
		{
			name: "diff",
			args: []string{"diff", "2024-01-01", "now"},
			setup: func(calc *muse.MockCalculatorUseCase) {
				calc.EXPECT().TimeDifference(mock.Anything, "2024-01-01", "now").Return("report").Once()
			},
		},
		{
			name: "convert default unit",
			args: []string{"convert", "90 minutes"},
			setup: func(calc *muse.MockCalculatorUseCase) {
				calc.EXPECT().ConvertDuration(mock.Anything, "90 minutes", "minutes").Return("report").Once()
			},
		},
		{
			name: "convert with unit",
			args: []string{"convert", "90 minutes", "-u", "hours"},
			setup: func(calc *muse.MockCalculatorUseCase) {
				calc.EXPECT().ConvertDuration(mock.Anything, "90 minutes", "hours").Return("report").Once()
			},
		},
		{
			name: "format default",
			args: []string{"format"},
			setup: func(calc *muse.MockCalculatorUseCase) {
				calc.EXPECT().FormatCurrentTime(mock.Anything, "%H:%M:%S").Return("report").Once()
			},
		},
		{
			name: "format pattern",
			args: []string{"format", "%Y"},
			setup: func(calc *muse.MockCalculatorUseCase) {
				calc.EXPECT().FormatCurrentTime(mock.Anything, "%Y").Return("report").Once()
			},
		},
		{
			name: "parse words",
			args: []string{"parse", "tomorrow", "at", "3pm"},
			setup: func(calc *muse.MockCalculatorUseCase) {
				calc.EXPECT().ParseToTimestamp(mock.Anything, "tomorrow at 3pm").Return("report").Once()
			},
		},
		{
			name: "info",
			args: []string{"info", "--timezone", "UTC"},
			setup: func(calc *muse.MockCalculatorUseCase) {
				calc.EXPECT().TimeInfo(mock.Anything, "UTC").Return("report").Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := muse.NewMockCalculatorUseCase(t)
			tt.setup(calc)

			out, err := run(t, calc, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, "report\n", out)
		})
	}
}

func TestRootCmd_ArgumentErrors(t *testing.T) {
	calc := muse.NewMockCalculatorUseCase(t)

	_, err := run(t, calc, "diff", "now")
	assert.Error(t, err)

	_, err = run(t, calc, "add")
	assert.Error(t, err)
}

func TestRootCmd_BuildError(t *testing.T) {
	cmd := newRootCmd(func(bool) (usecase.CalculatorUseCase, defaults, error) {
		return nil, defaults{}, errors.New("bad config")
	})
	cmd.SetArgs([]string{"info"})
	cmd.SetOut(&bytes.Buffer{})

	assert.EqualError(t, cmd.Execute(), "bad config")
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	var gotVerbose bool
	calc := muse.NewMockCalculatorUseCase(t)
	calc.EXPECT().TimeInfo(mock.Anything, "").Return("report").Once()

	cmd := newRootCmd(func(verbose bool) (usecase.CalculatorUseCase, defaults, error) {
		gotVerbose = verbose
		return calc, defaults{}, nil
	})
	cmd.SetArgs([]string{"-v", "info"})
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.True(t, gotVerbose)
}
