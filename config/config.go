// config/config.go
// Description: loads paramparse configuration from an optional JSON file and environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-api-http-params/logger"
)

const (
	DefaultLogLevel            = "LogLevelWarn"
	DefaultLogOutputFormat     = "json"
	DefaultLogConsoleSeparator = "\t"
	DefaultOutputFormat        = "json"
	DefaultKeepBlankValues     = true
	ConfigFileExtension        = ".json"
)

// Config holds the runtime options of the paramparse CLI.
type Config struct {
	LogLevel            string `json:"log_level,omitempty"`
	LogOutputFormat     string `json:"log_output_format,omitempty"`
	LogConsoleSeparator string `json:"log_console_separator,omitempty"`
	OutputFormat        string `json:"output_format,omitempty"`
	KeepBlankValues     *bool  `json:"keep_blank_values,omitempty"`
	HideSensitiveData   bool   `json:"hide_sensitive_data,omitempty"`
	MaxParams           int    `json:"max_params,omitempty"`
}

// LoadConfigFromFile loads configuration values from a JSON file into a Config.
func LoadConfigFromFile(path string) (*Config, error) {
	path, err := validateFilePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to clean/validate filepath (%s): %w", path, err)
	}

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the configuration file: %s, error: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(fileBytes, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the configuration file: %s, error: %w", path, err)
	}

	return &config, nil
}

// LoadConfigFromEnv overrides config with any of the supported environment variables that are set.
// A nil config starts from an empty one. Defaults and validation are left to the caller so that
// later sources such as command-line flags can still override the result.
func LoadConfigFromEnv(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}

	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)
	config.LogOutputFormat = getEnvOrDefault("LOG_OUTPUT_FORMAT", config.LogOutputFormat)
	config.LogConsoleSeparator = getEnvOrDefault("LOG_CONSOLE_SEPARATOR", config.LogConsoleSeparator)
	config.OutputFormat = getEnvOrDefault("OUTPUT_FORMAT", config.OutputFormat)
	config.HideSensitiveData = parseBool(getEnvOrDefault("HIDE_SENSITIVE_DATA", strconv.FormatBool(config.HideSensitiveData)))
	config.MaxParams = parseInt(getEnvOrDefault("MAX_PARAMS", strconv.Itoa(config.MaxParams)), config.MaxParams)

	if v, ok := os.LookupEnv("KEEP_BLANK_VALUES"); ok {
		keep := parseBool(v)
		config.KeepBlankValues = &keep
	}

	return config
}

// SetDefaultValues fills unset fields with their defaults.
func SetDefaultValues(config *Config) {
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.LogOutputFormat == "" {
		config.LogOutputFormat = DefaultLogOutputFormat
	}
	if config.LogConsoleSeparator == "" {
		config.LogConsoleSeparator = DefaultLogConsoleSeparator
	}
	if config.OutputFormat == "" {
		config.OutputFormat = DefaultOutputFormat
	}
	if config.KeepBlankValues == nil {
		keep := DefaultKeepBlankValues
		config.KeepBlankValues = &keep
	}
	if config.MaxParams < 0 {
		config.MaxParams = 0
	}
}

// Validate reports every invalid setting in a single error.
func Validate(config *Config) error {
	var problems []string

	if logger.ParseLogLevelFromString(config.LogLevel) == logger.LogLevelNone && config.LogLevel != "LogLevelNone" {
		problems = append(problems, fmt.Sprintf("unknown log level %q", config.LogLevel))
	}
	switch config.LogOutputFormat {
	case "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("unknown log output format %q, expected json or console", config.LogOutputFormat))
	}
	switch config.OutputFormat {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("unknown output format %q, expected json or text", config.OutputFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() logger.LogLevel {
	return logger.ParseLogLevelFromString(c.LogLevel)
}

// KeepBlank reports whether blank query values are kept.
func (c *Config) KeepBlank() bool {
	if c.KeepBlankValues == nil {
		return DefaultKeepBlankValues
	}
	return *c.KeepBlankValues
}

// validateFilePath cleans path and rejects traversal patterns and non-JSON extensions.
func validateFilePath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	absPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		return "", fmt.Errorf("unable to resolve the absolute path of the configuration file: %s, error: %w", path, err)
	}

	if strings.Contains(absPath, "..") {
		return "", fmt.Errorf("invalid path, path traversal patterns detected: %s", path)
	}

	if filepath.Ext(absPath) != ConfigFileExtension {
		return "", fmt.Errorf("invalid file extension for configuration file: %s, expected .json", path)
	}

	return cleanPath, nil
}

// Helper function to get environment variable or default value
func getEnvOrDefault(envKey string, defaultValue string) string {
	if value, exists := os.LookupEnv(envKey); exists {
		return value
	}
	return defaultValue
}

// Helper function to parse boolean from environment variable
func parseBool(value string) bool {
	result, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return result
}

// Helper function to parse int from environment variable
func parseInt(value string, defaultVal int) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal
	}
	return result
}
