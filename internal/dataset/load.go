package dataset

import (
	"fmt"

	"github.com/tracelint/tracelint/internal/docfile"
)

// Load reads a dataset file. JSON and YAML are supported, optionally
// zstd-compressed (".json.zst"). Decode failures are ParseErrors.
func Load(path string) (*Dataset, error) {
	data, format, err := docfile.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes a dataset document.
func Parse(data []byte, format docfile.Format) (*Dataset, error) {
	var ds Dataset
	if err := docfile.Decode(data, format, &ds); err != nil {
		return nil, &ParseError{Msg: err.Error(), Err: err}
	}
	if ds.Versions == nil {
		ds.Versions = make(map[string]Version)
	}
	return &ds, nil
}
