package contract

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/statelog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:     DefaultResultLimit,
		Precision: DefaultPrecision,
		Output:    "text",
		Color:     "yes",
		LogLevel:  DefaultLogLevel,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:   "valid minimal config",
			mutate: func(*ConfigRawInput) {},
		},
		{
			name:        "limit zero",
			mutate:      func(in *ConfigRawInput) { in.Limit = 0 },
			expectError: true,
		},
		{
			name:        "limit above top alarm maximum",
			mutate:      func(in *ConfigRawInput) { in.Limit = schema.MaxTopAlarms + 1 },
			expectError: true,
		},
		{
			name:        "negative precision",
			mutate:      func(in *ConfigRawInput) { in.Precision = -1 },
			expectError: true,
		},
		{
			name:        "precision too large",
			mutate:      func(in *ConfigRawInput) { in.Precision = MaxPrecision + 1 },
			expectError: true,
		},
		{
			name:        "invalid color",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: true,
		},
		{
			name:        "invalid log level",
			mutate:      func(in *ConfigRawInput) { in.LogLevel = "verbose" },
			expectError: true,
		},
		{
			name:        "invalid output",
			mutate:      func(in *ConfigRawInput) { in.Output = "html" },
			expectError: true,
		},
		{
			name:        "xlsx without output file",
			mutate:      func(in *ConfigRawInput) { in.Output = "xlsx" },
			expectError: true,
		},
		{
			name: "parquet with output file",
			mutate: func(in *ConfigRawInput) {
				in.Output = "parquet"
				in.OutputFile = "report.parquet"
			},
		},
		{
			name:   "uppercase output is normalized",
			mutate: func(in *ConfigRawInput) { in.Output = "JSON" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, schema.ValidOutputModes, cfg.Output)
		})
	}
}

func TestProcessAndValidateFields(t *testing.T) {
	input := validRawInput()
	input.Limit = 3
	input.Precision = 0
	input.Color = "no"
	input.LogLevel = "debug"
	input.RequireData = true
	input.MetricsFile = "statelog.prom"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, 3, cfg.ResultLimit)
	assert.Equal(t, 0, cfg.Precision)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.RequireData)
	assert.Equal(t, "statelog.prom", cfg.MetricsFile)
	assert.Equal(t, schema.TextOut, cfg.Output)
}

func TestResolveInputPath(t *testing.T) {
	tests := []struct {
		name       string
		positional string
		configured string
		expected   string
	}{
		{"default when nothing given", "", "", DefaultInputPath},
		{"configured input", "", "logs/state.csv", filepath.Clean("logs/state.csv")},
		{"positional wins", "a/../b.csv", "logs/state.csv", "b.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			input.InputPathStr = tt.positional
			input.Input = tt.configured
			cfg := &Config{}
			require.NoError(t, ProcessAndValidate(cfg, input))
			assert.Equal(t, tt.expected, cfg.InputPath)
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{InputPath: "a.csv", ResultLimit: 2}
	clone := cfg.Clone()
	clone.InputPath = "b.csv"

	assert.Equal(t, "a.csv", cfg.InputPath)
	assert.Equal(t, 2, clone.ResultLimit)
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, " run1 "))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "run1", profile.Prefix)

	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.Error(t, ProcessProfilingConfig(profile, "profiles"+string(filepath.Separator)))
}
