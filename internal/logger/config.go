package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// LoggingConfig wraps the Config for YAML parsing
type LoggingConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig returns the logging defaults: INFO-level text output
// to the console, no file logging
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/guildhall.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file and applies
// environment variable overrides. A missing or unparseable file
// silently yields the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			var wrapped LoggingConfig
			if err := yaml.Unmarshal(data, &wrapped); err == nil {
				loaded := wrapped.Logging
				if loaded.Level != "" {
					config.Level = loaded.Level
				}
				config.ConsoleEnabled = loaded.ConsoleEnabled
				config.FileEnabled = loaded.FileEnabled
				if loaded.ConsoleFormat != "" {
					config.ConsoleFormat = loaded.ConsoleFormat
				}
				if loaded.FilePath != "" {
					config.FilePath = loaded.FilePath
				}
				if loaded.FileFormat != "" {
					config.FileFormat = loaded.FileFormat
				}
				if loaded.FileMaxSizeMB > 0 {
					config.FileMaxSizeMB = loaded.FileMaxSizeMB
				}
				if loaded.FileMaxBackups > 0 {
					config.FileMaxBackups = loaded.FileMaxBackups
				}
				if loaded.FileMaxAgeDays > 0 {
					config.FileMaxAgeDays = loaded.FileMaxAgeDays
				}
			}
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = level
	}
	if format := os.Getenv("LOG_CONSOLE_FORMAT"); format != "" {
		config.ConsoleFormat = format
	}
	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}
	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		config.FilePath = filePath
	}

	return config, nil
}
