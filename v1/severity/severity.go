package severity

import "cloud.google.com/go/logging"

// Level is the pipeline's log level, the target of the severity-number
// mapping. Only the five values below are valid outputs.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// Severity number handling constants. OpenTelemetry severity numbers range
// from 1 to 24; out-of-range inputs are clamped.
const (
	// MinSeverityNumber is the lowest valid OpenTelemetry severity number.
	MinSeverityNumber = 1

	// MaxSeverityNumber is the highest valid OpenTelemetry severity number.
	MaxSeverityNumber = 24

	// DefaultSeverityNumber is substituted for inputs below the valid range.
	// 9 is the OpenTelemetry INFO severity.
	DefaultSeverityNumber = 9
)

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "INFO"
	}
}

// Cloud converts the level to the corresponding Cloud Logging severity.
func (l Level) Cloud() logging.Severity {
	switch l {
	case LevelDebug:
		return logging.Debug
	case LevelInfo:
		return logging.Info
	case LevelWarning:
		return logging.Warning
	case LevelError:
		return logging.Error
	case LevelCritical:
		return logging.Critical
	default:
		return logging.Info
	}
}

// FromNumber maps an OpenTelemetry severity number (1-24) to a Level.
//
// Inputs below 1 are treated as 9 (INFO); inputs above 24 are clamped to 24
// (CRITICAL). Within range the bands are inclusive:
//
//	 1- 8 -> DEBUG
//	 9-12 -> INFO
//	13-16 -> WARNING
//	17-20 -> ERROR
//	21-24 -> CRITICAL
func FromNumber(n int) Level {
	if n < MinSeverityNumber {
		n = DefaultSeverityNumber
	}
	if n > MaxSeverityNumber {
		n = MaxSeverityNumber
	}

	switch {
	case n <= 8:
		return LevelDebug
	case n <= 12:
		return LevelInfo
	case n <= 16:
		return LevelWarning
	case n <= 20:
		return LevelError
	default:
		return LevelCritical
	}
}
