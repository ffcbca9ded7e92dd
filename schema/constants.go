package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// FailureKind classifies why an analysis did not produce a result.
	FailureKind string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	TableOut   OutputMode = "table"
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	CSVOut     OutputMode = "csv"
	XLSXOut    OutputMode = "xlsx"
	PDFOut     OutputMode = "pdf"
	ParquetOut OutputMode = "parquet"
)

// All failure kinds supported.
const (
	SourceUnavailable    FailureKind = "source_unavailable"
	MalformedTimestamp   FailureKind = "malformed_timestamp"
	MalformedAlarmCode   FailureKind = "malformed_alarm_code"
	MalformedRecord      FailureKind = "malformed_record"
	OutOfOrderTimestamps FailureKind = "out_of_order_timestamps"
	InsufficientData     FailureKind = "insufficient_data"
	Unclassified         FailureKind = "unclassified"
)

// Process exit codes.
const (
	ExitSuccess           = 0
	ExitSourceUnavailable = 1
	ExitDecodeFailure     = 2
	ExitOutOfOrder        = 3
	ExitOther             = 4
)

// RunningLabel is the only state label that counts as running.
const RunningLabel = "running"

// RecordFields is the number of fields in every log record.
const RecordFields = 3

// MaxTopAlarms bounds the number of ranked alarm codes in a result.
const MaxTopAlarms = 5

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	TableOut:   {},
	JSONOut:    {},
	YAMLOut:    {},
	CSVOut:     {},
	XLSXOut:    {},
	PDFOut:     {},
	ParquetOut: {},
}

// FileOnlyOutputModes lists binary formats that must be written to a file.
var FileOnlyOutputModes = map[OutputMode]struct{}{
	XLSXOut:    {},
	PDFOut:     {},
	ParquetOut: {},
}

// ExitCode maps a failure kind to the process exit status.
func (k FailureKind) ExitCode() int {
	switch k {
	case SourceUnavailable:
		return ExitSourceUnavailable
	case MalformedTimestamp, MalformedAlarmCode, MalformedRecord:
		return ExitDecodeFailure
	case OutOfOrderTimestamps:
		return ExitOutOfOrder
	default: // InsufficientData, Unclassified
		return ExitOther
	}
}
