package schema

// EnrichedAlarm adds presentation data to an AlarmDuration.
type EnrichedAlarm struct {
	Rank         int     `json:"rank" yaml:"rank"`
	SharePercent float64 `json:"share_percent" yaml:"share_percent"` // Share of total accounted time

	AlarmDuration `yaml:",inline"`
}

// Availability labels.
const (
	HealthyValue  = "Healthy"
	DegradedValue = "Degraded"
	PoorValue     = "Poor"
	CriticalValue = "Critical"
	UnknownValue  = "Unknown"
)

// GetAvailabilityLabel returns a plain text label for an availability percentage.
func GetAvailabilityLabel(percent float64, defined bool) string {
	if !defined {
		return UnknownValue
	}
	switch {
	case percent >= 90:
		return HealthyValue
	case percent >= 75:
		return DegradedValue
	case percent >= 50:
		return PoorValue
	default:
		return CriticalValue
	}
}

// EnrichAlarms adds rank and time share to a ranked list of alarms.
func EnrichAlarms(alarms []AlarmDuration, totalSeconds int64) []EnrichedAlarm {
	output := make([]EnrichedAlarm, len(alarms))
	for i, a := range alarms {
		var share float64
		if totalSeconds > 0 {
			share = float64(a.DurationSeconds) / float64(totalSeconds) * 100
		}
		output[i] = EnrichedAlarm{
			Rank:          i + 1,
			SharePercent:  share,
			AlarmDuration: a,
		}
	}
	return output
}
