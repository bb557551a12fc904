package wiring

import (
	"fmt"

	coreport "github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
	"github.com/amirhossein-jamali/time-calculator/internal/domain/usecase/calculator"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/parser"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/config"
)

// NewLogger builds the zap logger described by the logger section
func NewLogger(cfg config.LoggerConfig) (coreport.Logger, error) {
	return logger.NewZapLogger(logger.Options{
		Level:  cfg.Level,
		Format: cfg.Format,
		Output: cfg.Output,
	})
}

// NewDurationParser returns the regex parser, behind an LRU when the cache size is positive
func NewDurationParser(cfg config.CalculatorConfig, recorder parser.CacheRecorder) (coreport.DurationParser, error) {
	base := parser.NewRegexParser()
	if cfg.ParseCacheSize == 0 {
		return base, nil
	}
	cached, err := parser.NewCachedParser(base, cfg.ParseCacheSize, recorder)
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}
	return cached, nil
}

// NewCalculator assembles the calculator service from configuration
func NewCalculator(
	cfg config.CalculatorConfig,
	timeProvider coreport.TimeProvider,
	log coreport.Logger,
	recorder parser.CacheRecorder,
) (*calculator.Service, error) {
	order, err := calculator.ParseSlashDateOrder(cfg.SlashDateOrder)
	if err != nil {
		return nil, err
	}
	p, err := NewDurationParser(cfg, recorder)
	if err != nil {
		return nil, err
	}
	return calculator.NewCalculatorService(p, calculator.NewDateResolver(order), timeProvider, log), nil
}
