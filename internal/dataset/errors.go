package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrParse indicates a dataset document that could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrVersionNotFound indicates a requested version missing from the dataset.
	ErrVersionNotFound = errors.New("version not found")

	// ErrNoCurrentVersion indicates no version was requested and the dataset names none.
	ErrNoCurrentVersion = errors.New("no version requested and current_version is not set")
)

// ParseError represents a failure to decode a dataset document.
// Wraps ErrParse for errors.Is() compatibility.
type ParseError struct {
	Msg string
	Err error // underlying decoder error, if any
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

// VersionError names a version that could not be resolved.
// Wraps ErrVersionNotFound for errors.Is() compatibility.
type VersionError struct {
	Version   string
	Available []string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: %q (available: %v)", ErrVersionNotFound.Error(), e.Version, e.Available)
}

func (e *VersionError) Unwrap() error { return ErrVersionNotFound }
