package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huangsam/statelog/internal/logger"
	"github.com/huangsam/statelog/schema"
	"go.uber.org/zap/zapcore"
)

// Default values for configuration.
const (
	DefaultInputPath   = "MachineStateLog.csv"
	DefaultResultLimit = schema.MaxTopAlarms
	DefaultPrecision   = 2
	MaxPrecision       = 4
	DefaultLogLevel    = "warn"
)

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath   string
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool
	LogLevel    zapcore.Level
	RequireData bool // Fail with InsufficientData instead of reporting availability as n/a
	MetricsFile string
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	Input       string `mapstructure:"input"`
	Limit       int    `mapstructure:"limit"`
	Precision   int    `mapstructure:"precision"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Color       string `mapstructure:"color"`
	LogLevel    string `mapstructure:"log-level"`
	RequireData bool   `mapstructure:"require-data"`
	MetricsFile string `mapstructure:"metrics-file"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateOutput(cfg, input); err != nil {
		return err
	}
	resolveInputPath(cfg, input)
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.RequireData = input.RequireData
	cfg.MetricsFile = input.MetricsFile

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > schema.MaxTopAlarms {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", schema.MaxTopAlarms, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Color Validation ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 4. Log Level Validation ---
	level, ok := logger.ParseLogLevel(input.LogLevel)
	if !ok {
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warn, error", input.LogLevel)
	}
	cfg.LogLevel = level

	return nil
}

// validateOutput checks the output format and its destination.
func validateOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, table, json, yaml, csv, xlsx, pdf, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if _, fileOnly := schema.FileOnlyOutputModes[cfg.Output]; fileOnly && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}
	return nil
}

// resolveInputPath picks the positional path, then the configured input, then the default.
func resolveInputPath(cfg *Config, input *ConfigRawInput) {
	path := input.InputPathStr
	if path == "" {
		path = input.Input
	}
	if path == "" {
		path = DefaultInputPath
	}
	cfg.InputPath = filepath.Clean(path)
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	prefix := strings.TrimSpace(profilePrefix)
	if prefix == "" {
		profile.Enabled = false
		profile.Prefix = ""
		return nil
	}
	if strings.HasSuffix(prefix, string(filepath.Separator)) {
		return fmt.Errorf("profile prefix must name a file, not a directory: %s", prefix)
	}
	profile.Enabled = true
	profile.Prefix = prefix
	return nil
}
