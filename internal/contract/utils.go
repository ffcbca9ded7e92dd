package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/statelog/schema"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold) // CriticalColor represents standard danger.
	PoorColor     = color.New(color.FgMagenta)         // PoorColor represents strong, distinct warning.
	DegradedColor = color.New(color.FgYellow)          // DegradedColor represents standard caution.
	HealthyColor  = color.New(color.FgGreen)           // HealthyColor represents a machine in good shape.
	UnknownColor  = color.New(color.FgCyan)            // UnknownColor represents an informational signal.
)

// GetColorLabel returns a colored availability label for console output (table).
// It uses schema.GetAvailabilityLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(percent float64, defined bool) string {
	text := schema.GetAvailabilityLabel(percent, defined)

	switch text {
	case schema.CriticalValue:
		return CriticalColor.Sprint(text)
	case schema.PoorValue:
		return PoorColor.Sprint(text)
	case schema.DegradedValue:
		return DegradedColor.Sprint(text)
	case schema.HealthyValue:
		return HealthyColor.Sprint(text)
	default:
		return UnknownColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(schema.ExitOther)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
