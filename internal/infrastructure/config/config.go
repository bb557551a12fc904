package config

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
	"github.com/amirhossein-jamali/time-calculator/internal/domain/usecase/calculator"
)

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Calculator  CalculatorConfig `mapstructure:"calculator"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// Address returns host:port for the listener
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// CalculatorConfig contains calculator behaviour settings
type CalculatorConfig struct {
	SlashDateOrder    string `mapstructure:"slashDateOrder"`
	ParseCacheSize    int    `mapstructure:"parseCacheSize"` // 0 disables the cache
	DefaultFormat     string `mapstructure:"defaultFormat"`
	DefaultTargetUnit string `mapstructure:"defaultTargetUnit"`
}

// Validate checks values that cannot be repaired with a default
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if _, err := core.ParseLogLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("logger.level: %w", err)
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logger.format %q must be json or console", c.Logger.Format)
	}
	switch c.Logger.Output {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("logger.output %q must be stdout or stderr", c.Logger.Output)
	}
	if _, err := calculator.ParseSlashDateOrder(c.Calculator.SlashDateOrder); err != nil {
		return fmt.Errorf("calculator.slashDateOrder: %w", err)
	}
	if c.Calculator.ParseCacheSize < 0 {
		return fmt.Errorf("calculator.parseCacheSize %d must not be negative", c.Calculator.ParseCacheSize)
	}
	return nil
}
