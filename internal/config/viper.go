// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. STMTRISK_LOG_LEVEL.
const EnvPrefix = "STMTRISK"

// MaxWorkers bounds the extraction worker pool.
const MaxWorkers = 64

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Extraction struct {
		Workers    int      `mapstructure:"workers" yaml:"workers"`
		Extensions []string `mapstructure:"extensions" yaml:"extensions"`
	} `mapstructure:"extraction" yaml:"extraction"`

	Analysis struct {
		DefaultEntityName string `mapstructure:"default_entity_name" yaml:"default_entity_name"`
		KeywordsFile      string `mapstructure:"keywords_file" yaml:"keywords_file"`
	} `mapstructure:"analysis" yaml:"analysis"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`

	History struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Path    string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"history" yaml:"history"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-risk")
	v.AddConfigPath(".statement-risk")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logrus.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Comma-separated env values arrive as a single element.
	config.Extraction.Extensions = splitList(config.Extraction.Extensions)

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Extraction defaults
	v.SetDefault("extraction.workers", min(runtime.NumCPU(), MaxWorkers))
	v.SetDefault("extraction.extensions", []string{".md", ".txt"})

	// Analysis defaults
	v.SetDefault("analysis.default_entity_name", "Unknown Company")
	v.SetDefault("analysis.keywords_file", "")

	// Report defaults
	v.SetDefault("report.format", "json")

	// History defaults
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.path", "statement-risk.db")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Extraction.Workers < 1 || config.Extraction.Workers > MaxWorkers {
		return fmt.Errorf("extraction.workers must be between 1 and %d, got: %d", MaxWorkers, config.Extraction.Workers)
	}

	if len(config.Extraction.Extensions) == 0 {
		return fmt.Errorf("extraction.extensions must list at least one extension")
	}

	switch strings.ToLower(config.Report.Format) {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("invalid report format: %s (must be 'json', 'yaml' or 'text')", config.Report.Format)
	}

	if config.History.Enabled && strings.TrimSpace(config.History.Path) == "" {
		return fmt.Errorf("history.path required when history is enabled")
	}

	return nil
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
