package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tracelint/tracelint/internal/issue"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// EncodeJSONL writes one issue per line.
func EncodeJSONL(w io.Writer, issues []issue.Issue) error {
	for i, iss := range issues {
		data, err := json.Marshal(iss)
		if err != nil {
			return fmt.Errorf("encoding issue %d: %w", i, err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing issue %d: %w", i, err)
		}
	}
	return nil
}

// WriteJSONL writes issues to a JSONL file, replacing existing content.
func WriteJSONL(path string, issues []issue.Issue) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating issues file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := EncodeJSONL(w, issues); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing issues file: %w", err)
	}
	return f.Close()
}

// ReadJSONL reads issues from a JSONL file.
func ReadJSONL(path string) ([]issue.Issue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening issues file: %w", err)
	}
	defer f.Close()

	var issues []issue.Issue
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var iss issue.Issue
		if err := json.Unmarshal(line, &iss); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		issues = append(issues, iss)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading issues file: %w", err)
	}

	return issues, nil
}
