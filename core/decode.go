package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/statelog/schema"
)

// timestampLayouts is the fixed, locale-independent grammar accepted for the
// timestamp field. Layouts are tried in order; inputs without an offset are UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
	"1/2/2006",
}

// DecodeRow maps one raw record (state, timestamp, alarm code) into a LogEvent.
// The row is the 1-based data row index used for diagnostics.
func DecodeRow(record []string, row int) (schema.LogEvent, error) {
	if len(record) != schema.RecordFields {
		return schema.LogEvent{}, schema.NewAnalysisError(schema.MalformedRecord, row,
			fmt.Errorf("%w: expected %d fields, got %d", schema.ErrMalformedRecord, schema.RecordFields, len(record)))
	}

	ts, err := ParseTimestamp(record[1])
	if err != nil {
		return schema.LogEvent{}, schema.NewAnalysisError(schema.MalformedTimestamp, row, err)
	}

	event := schema.LogEvent{
		Running:   record[0] == schema.RunningLabel,
		Timestamp: ts,
	}

	code, ok, err := ParseAlarmCode(record[2])
	if err != nil {
		return schema.LogEvent{}, schema.NewAnalysisError(schema.MalformedAlarmCode, row, err)
	}
	event.AlarmCode = code
	event.HasAlarm = ok

	return event, nil
}

// ParseTimestamp parses a timestamp field against the accepted layouts.
func ParseTimestamp(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s != "" {
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", schema.ErrMalformedTimestamp, text)
}

// ParseAlarmCode parses an alarm field. A blank field yields ok=false and no error.
func ParseAlarmCode(text string) (code int, ok bool, err error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false, nil
	}
	code, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", schema.ErrMalformedAlarmCode, text)
	}
	return code, true, nil
}
