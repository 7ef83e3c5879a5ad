package policy

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrParse indicates a policy document that could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates a decoded document with invalid values.
	ErrSchema = errors.New("schema error")

	// ErrInvalidParams indicates a rule whose mandatory parameters are missing or malformed.
	ErrInvalidParams = errors.New("invalid rule parameters")

	// ErrUnknownRule indicates a rule id with no built-in check (strict evaluation only).
	ErrUnknownRule = errors.New("unknown rule")
)

// ParseError represents a failure to decode a policy document.
// Wraps ErrParse for errors.Is() compatibility.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return ErrParse.Error()
	}
	return fmt.Sprintf("%s: %s", ErrParse.Error(), e.Msg)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// SchemaError represents an invalid value in a decoded policy document.
// Wraps ErrSchema for errors.Is() compatibility.
type SchemaError struct {
	Field string // path of the offending field, e.g. "rules[2].selector.ids"
	Msg   string
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", ErrSchema.Error(), e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrSchema.Error(), e.Msg)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// RuleError reports the rule that made an evaluation fail.
type RuleError struct {
	Index  int // position in Policies.Rules
	RuleID string
	Err    error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %d (%s): %v", e.Index, e.RuleID, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

func fieldPath(index int, field string) string {
	return "rules[" + strconv.Itoa(index) + "]." + field
}

func quote(s string) string {
	return strconv.Quote(s)
}
