package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/port/usecase"
)

type defaults struct {
	format     string
	targetUnit string
}

// builder assembles the calculator once flags are parsed
type builder func(verbose bool) (usecase.CalculatorUseCase, defaults, error)

type app struct {
	calc     usecase.CalculatorUseCase
	defaults defaults
	verbose  bool
}

func newRootCmd(build builder) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "timecalc",
		Short:         "Natural-language time and duration calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			calc, d, err := build(a.verbose)
			if err != nil {
				return err
			}
			a.calc, a.defaults = calc, d
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "write logs to stderr")

	rootCmd.AddCommand(
		a.shiftCmd("add", "Add a duration to a base time", a.add),
		a.shiftCmd("subtract", "Subtract a duration from a base time", a.subtract),
		a.diffCmd(),
		a.convertCmd(),
		a.formatCmd(),
		a.parseCmd(),
		a.infoCmd(),
	)
	return rootCmd
}

func (a *app) add(cmd *cobra.Command, duration, base string) string {
	return a.calc.AddDuration(cmd.Context(), duration, base)
}

func (a *app) subtract(cmd *cobra.Command, duration, base string) string {
	return a.calc.SubtractDuration(cmd.Context(), duration, base)
}

func (a *app) shiftCmd(use, short string, op func(*cobra.Command, string, string) string) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:     use + " <duration>",
		Short:   short,
		Example: "  timecalc " + use + " \"2 hours 30 minutes\" --base tomorrow",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, op(cmd, strings.Join(args, " "), base))
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "base time (default current time)")
	return cmd
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "diff <start> <end>",
		Short:   "Difference between two times",
		Example: "  timecalc diff 2024-01-01 \"tomorrow at 9am\"",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, a.calc.TimeDifference(cmd.Context(), args[0], args[1]))
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:     "convert <duration>",
		Short:   "Express a duration in one unit",
		Example: "  timecalc convert \"1 day 6 hours\" --unit hours",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if unit == "" {
				unit = a.defaults.targetUnit
			}
			return a.print(cmd, a.calc.ConvertDuration(cmd.Context(), strings.Join(args, " "), unit))
		},
	}
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "target unit (default from configuration)")
	return cmd
}

func (a *app) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "format [pattern]",
		Short:   "Format the current time with a strftime pattern",
		Example: "  timecalc format \"%Y-%m-%d %I:%M %p\"",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := a.defaults.format
			if len(args) == 1 {
				pattern = args[0]
			}
			return a.print(cmd, a.calc.FormatCurrentTime(cmd.Context(), pattern))
		},
	}
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "parse [text...]",
		Short:   "Resolve a date phrase to a Unix timestamp",
		Example: "  timecalc parse tomorrow at 3pm",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, a.calc.ParseToTimestamp(cmd.Context(), strings.Join(args, " ")))
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	var timezone string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Calendar facts about the current time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, a.calc.TimeInfo(cmd.Context(), timezone))
		},
	}
	cmd.Flags().StringVar(&timezone, "timezone", "", "timezone name (acknowledged, not applied)")
	return cmd
}

func (a *app) print(cmd *cobra.Command, report string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), report)
	return err
}
