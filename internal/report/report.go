// Package report packages the result of a check run for output and export.
package report

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"lukechampine.com/blake3"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
)

// SchemaVersion is bumped whenever the Report layout changes incompatibly.
const SchemaVersion = 1

// Report is the outcome of one check run.
type Report struct {
	SchemaVersion int            `json:"schema_version"`
	RunID         string         `json:"run_id"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Version       string         `json:"version"`
	Nodes         int            `json:"nodes"`
	Edges         int            `json:"edges"`
	Counts        map[string]int `json:"counts"`
	Fingerprint   string         `json:"fingerprint"`
	Issues        []issue.Issue  `json:"issues"`
	Baseline      *Baseline      `json:"baseline,omitempty"`
}

// Baseline describes a comparison against a previous run's issue list.
type Baseline struct {
	Path  string        `json:"path"`
	Known int           `json:"known"`
	New   []issue.Issue `json:"new"`
}

// New assembles a report for the issues found in g.
func New(version string, g *graph.Graph, issues []issue.Issue) (*Report, error) {
	if issues == nil {
		issues = []issue.Issue{}
	}
	fp, err := Fingerprint(issues)
	if err != nil {
		return nil, err
	}
	return &Report{
		SchemaVersion: SchemaVersion,
		RunID:         uuid.New().String(),
		GeneratedAt:   time.Now().UTC(),
		Version:       version,
		Nodes:         g.NodeCount(),
		Edges:         g.EdgeCount(),
		Counts:        issue.CountBySeverity(issues),
		Fingerprint:   fp,
		Issues:        issues,
	}, nil
}

// Fingerprint hashes the JSONL encoding of issues with BLAKE3. Equal issue
// lists in equal order give equal fingerprints.
func Fingerprint(issues []issue.Issue) (string, error) {
	var buf bytes.Buffer
	if err := EncodeJSONL(&buf, issues); err != nil {
		return "", fmt.Errorf("fingerprinting issues: %w", err)
	}
	sum := blake3.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// CompareBaseline records which issues are absent from baseline. Matching is
// by multiset: an issue repeated three times now but twice in the baseline
// contributes one new entry.
func (r *Report) CompareBaseline(path string, baseline []issue.Issue) {
	r.Baseline = &Baseline{Path: path, New: NewSince(r.Issues, baseline)}
	r.Baseline.Known = len(r.Issues) - len(r.Baseline.New)
}

// NewSince returns the issues in current that baseline does not account for,
// in their original order.
func NewSince(current, baseline []issue.Issue) []issue.Issue {
	remaining := make(map[issue.Issue]int, len(baseline))
	for _, i := range baseline {
		remaining[i]++
	}
	out := []issue.Issue{}
	for _, i := range current {
		if remaining[i] > 0 {
			remaining[i]--
			continue
		}
		out = append(out, i)
	}
	return out
}
