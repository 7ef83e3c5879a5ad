// Package issue defines structured findings produced by graph validation and
// policy evaluation. Issues are data: they are returned, never raised.
package issue

import (
	"fmt"
	"strings"

	"github.com/tracelint/tracelint/internal/node"
)

// Severity orders issues from advisory to blocking.
type Severity int

const (
	Suggestion Severity = iota
	Warning
	Error
)

// Severities lists every severity in ascending order.
var Severities = []Severity{Suggestion, Warning, Error}

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case Suggestion:
		return "suggestion"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity parses a severity name, ignoring case and surrounding whitespace.
func ParseSeverity(raw string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "suggestion":
		return Suggestion, nil
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return 0, fmt.Errorf("unknown severity %q (valid: suggestion, warning, error)", raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Issue is one finding about a node.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     Code     `json:"code"`
	Subject  node.ID  `json:"subject"`
	Detail   string   `json:"detail"`
}

// New creates an issue.
func New(sev Severity, code Code, subject node.ID, detail string) Issue {
	return Issue{Severity: sev, Code: code, Subject: subject, Detail: detail}
}

// Errorf creates an error-severity issue.
func Errorf(code Code, subject node.ID, format string, args ...any) Issue {
	return New(Error, code, subject, fmt.Sprintf(format, args...))
}

// Warnf creates a warning-severity issue.
func Warnf(code Code, subject node.ID, format string, args ...any) Issue {
	return New(Warning, code, subject, fmt.Sprintf(format, args...))
}

// Suggestf creates a suggestion-severity issue.
func Suggestf(code Code, subject node.ID, format string, args ...any) Issue {
	return New(Suggestion, code, subject, fmt.Sprintf(format, args...))
}

// String formats the issue on one line.
func (i Issue) String() string {
	return fmt.Sprintf("[%s] [%s] %s: %s", i.Severity, i.Code, i.Subject, i.Detail)
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	return AtLeast(issues, Error)
}

// AtLeast reports whether any issue is at or above the given severity.
func AtLeast(issues []Issue, sev Severity) bool {
	for _, i := range issues {
		if i.Severity >= sev {
			return true
		}
	}
	return false
}

// CountBySeverity tallies issues per severity name. Every severity is present in the result.
func CountBySeverity(issues []Issue) map[string]int {
	counts := make(map[string]int, len(Severities))
	for _, s := range Severities {
		counts[s.String()] = 0
	}
	for _, i := range issues {
		counts[i.Severity.String()]++
	}
	return counts
}
