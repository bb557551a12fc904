package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. TC_SERVER_PORT
const EnvPrefix = "TC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// errNoDotEnv reports that no .env file exists on the search paths
var errNoDotEnv = errors.New("no .env file found in search paths")

// LoadConfig loads configuration for the environment named by TC_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(DotEnvPaths); err != nil && !errors.Is(err, errNoDotEnv) {
		return nil, err
	}
	return Load(getEnvironment(), ConfigPaths)
}

// Load reads <env>.yaml from the first path that has it. A missing file leaves the
// defaults in place; environment variables override both.
func Load(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)
	normalize(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Existing variables are not overwritten.
func loadDotEnvFile(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errNoDotEnv
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("calculator.slashDateOrder", "mdy")
	v.SetDefault("calculator.parseCacheSize", 1024)
	v.SetDefault("calculator.defaultFormat", "%H:%M:%S")
	v.SetDefault("calculator.defaultTargetUnit", "minutes")
}

// getEnvironment determines the environment from TC_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processDurations reads bare numbers such as "readTimeout: 15" as seconds
func processDurations(config *Config) {
	for _, d := range []*time.Duration{
		&config.Server.ReadTimeout,
		&config.Server.WriteTimeout,
		&config.Server.IdleTimeout,
		&config.Server.ReadHeaderTimeout,
		&config.Server.ShutdownTimeout,
	} {
		if *d > 0 && *d < time.Microsecond {
			*d *= time.Second
		}
	}
}

func normalize(config *Config) {
	config.Logger.Level = strings.ToLower(config.Logger.Level)
	config.Logger.Format = strings.ToLower(config.Logger.Format)
	config.Logger.Output = strings.ToLower(config.Logger.Output)
	config.Calculator.SlashDateOrder = strings.ToLower(config.Calculator.SlashDateOrder)
}
