package main

import (
	"fmt"
	"os"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
	"github.com/amirhossein-jamali/time-calculator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/clock"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/config"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/wiring"
)

func main() {
	if err := newRootCmd(build).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// build loads configuration and assembles the calculator. Logs are discarded unless verbose.
func build(verbose bool) (usecase.CalculatorUseCase, defaults, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, defaults{}, err
	}

	var log core.Logger = logger.NewNoopLogger()
	if verbose {
		cfg.Logger.Output = "stderr"
		if log, err = wiring.NewLogger(cfg.Logger); err != nil {
			return nil, defaults{}, err
		}
	}

	svc, err := wiring.NewCalculator(cfg.Calculator, clock.NewRealTimeProvider(), log, nil)
	if err != nil {
		return nil, defaults{}, err
	}
	return svc, defaults{
		format:     cfg.Calculator.DefaultFormat,
		targetUnit: cfg.Calculator.DefaultTargetUnit,
	}, nil
}
