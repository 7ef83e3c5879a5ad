// Package docfile reads the JSON and YAML documents tracelint consumes,
// optionally zstd-compressed.
package docfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates a file extension that maps to no supported format.
var ErrUnknownFormat = errors.New("unknown document format")

const zstdExt = ".zst"

// FormatFromPath infers the document format from a file name. A trailing .zst is
// ignored, so "needs.json.zst" is JSON.
func FormatFromPath(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, zstdExt)
	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s (expected .json, .yml or .yaml)", ErrUnknownFormat, path)
	}
}

// ReadFile reads a document, transparently decompressing .zst files, and
// returns its bytes together with the inferred format.
func ReadFile(path string) ([]byte, Format, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), zstdExt) {
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return nil, "", fmt.Errorf("creating zstd decoder: %w", err)
		}
		defer decoder.Close()
		r = decoder
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	return data, format, nil
}

// Decode unmarshals data in the given format into v.
func Decode(data []byte, format Format, v any) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
