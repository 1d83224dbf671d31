// Package severity provides the severity levels attached to issues reported by
// bulk formatting.
//
// Levels, ordered from least to most severe for display purposes:
//   - SeverityInfo: notices about choices made during a run
//   - SeverityWarning: a selection or candidate was skipped but the run continued
//   - SeverityError: a selection was rejected (empty or not a valid variable name)
//   - SeverityCritical: the run could not proceed
package severity

import "fmt"

// Severity indicates the severity level of an issue.
type Severity int

const (
	// SeverityError indicates a rejected input, such as a selection that is not a
	// valid variable name.
	SeverityError Severity = iota

	// SeverityWarning indicates an input that was skipped without failing the run.
	SeverityWarning

	// SeverityInfo indicates an informational notice.
	SeverityInfo

	// SeverityCritical indicates a failure that stopped processing.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name so JSON and YAML output stay readable.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name produced by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	case "critical":
		*s = SeverityCritical
	default:
		return fmt.Errorf("severity: unknown level %q", text)
	}
	return nil
}

// AtLeast reports whether s is as severe as other or more.
func (s Severity) AtLeast(other Severity) bool {
	return s.rank() >= other.rank()
}

func (s Severity) rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}
