// Package diag defines the typed diagnostic records collected while loading
// host and edge input. Per-record problems never abort a run; callers decide
// whether to print, inspect, or suppress them.
package diag

import "fmt"

// Kind identifies the category of a diagnostic.
type Kind string

const (
	InvalidHost   Kind = "invalid_host"
	DuplicateHost Kind = "duplicate_host"
	MalformedEdge Kind = "malformed_edge"
	DanglingEdge  Kind = "dangling_edge"
	SelfEdge      Kind = "self_edge"
)

// Diagnostic captures a single non-fatal problem with one input record.
type Diagnostic struct {
	Record   int    `json:"record"` // 1-based position in the input sequence
	Input    string `json:"input"`
	Kind     Kind   `json:"kind"`
	Severity string `json:"severity"` // warning | error
	Message  string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] record %d %q: %s", d.Severity, d.Record, d.Input, d.Message)
}

// Errorf records a per-record validation error.
func Errorf(record int, input string, kind Kind, format string, args ...any) Diagnostic {
	return Diagnostic{
		Record:   record,
		Input:    input,
		Kind:     kind,
		Severity: "error",
		Message:  fmt.Sprintf(format, args...),
	}
}

// Warnf records a per-record warning.
func Warnf(record int, input string, kind Kind, format string, args ...any) Diagnostic {
	return Diagnostic{
		Record:   record,
		Input:    input,
		Kind:     kind,
		Severity: "warning",
		Message:  fmt.Sprintf(format, args...),
	}
}
