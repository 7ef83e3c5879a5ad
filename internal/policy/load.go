package policy

import (
	"fmt"

	"github.com/tracelint/tracelint/internal/docfile"
)

// Load reads and validates a policy document. JSON and YAML are supported,
// optionally zstd-compressed.
func Load(path string) (*Policies, error) {
	data, format, err := docfile.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policies: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates a policy document.
func Parse(data []byte, format docfile.Format) (*Policies, error) {
	var p Policies
	if err := docfile.Decode(data, format, &p); err != nil {
		return nil, &ParseError{Msg: err.Error(), Err: err}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
