package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

func testGraph() *graph.Graph {
	return graph.New(map[node.ID]node.Node{
		"REQ_1":  {ID: "REQ_1", Type: "req", Title: "Login", Tags: []string{"auth", "ui"}, Links: []node.ID{"SPEC_1"}},
		"SPEC_1": {ID: "SPEC_1", Type: "spec", Links: []node.ID{"TEST_1", "GHOST"}},
		"TEST_1": {ID: "TEST_1", Type: "test", Status: "passing"},
	})
}

func testIssues() []issue.Issue {
	return []issue.Issue{
		issue.Errorf(issue.BrokenLink, "SPEC_1", "edge SPEC_1 -> GHOST targets unknown node GHOST"),
		issue.New(issue.Warning, issue.HasOutgoing, "TEST_1", "missing required forward links"),
		issue.New(issue.Suggestion, issue.FieldPresent, "REQ_1", "required field missing"),
	}
}

func TestNew(t *testing.T) {
	g := testGraph()
	r, err := New("1.0", g, testIssues())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if r.SchemaVersion != SchemaVersion || r.Version != "1.0" {
		t.Errorf("unexpected header: %+v", r)
	}
	if r.Nodes != g.NodeCount() || r.Edges != g.EdgeCount() {
		t.Errorf("Nodes/Edges = %d/%d, want %d/%d", r.Nodes, r.Edges, g.NodeCount(), g.EdgeCount())
	}
	if r.RunID == "" || r.GeneratedAt.IsZero() {
		t.Error("RunID and GeneratedAt must be set")
	}
	want := map[string]int{"error": 1, "warning": 1, "suggestion": 1}
	for sev, n := range want {
		if r.Counts[sev] != n {
			t.Errorf("Counts[%s] = %d, want %d", sev, r.Counts[sev], n)
		}
	}
	if len(r.Fingerprint) != 64 {
		t.Errorf("Fingerprint = %q, want 64 hex chars", r.Fingerprint)
	}
}

func TestNew_NilIssues(t *testing.T) {
	r, err := New("", testGraph(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"issues":[]`) {
		t.Errorf("expected empty issues array in %s", data)
	}
	if strings.Contains(string(data), `"baseline"`) {
		t.Errorf("baseline must be omitted without a comparison: %s", data)
	}
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(testIssues())
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}
	b, _ := Fingerprint(testIssues())
	if a != b {
		t.Errorf("equal lists gave %s and %s", a, b)
	}

	reordered := testIssues()
	slices.Reverse(reordered)
	c, _ := Fingerprint(reordered)
	if a == c {
		t.Error("reordered list gave the same fingerprint")
	}

	r1, _ := New("1.0", testGraph(), testIssues())
	r2, _ := New("1.0", testGraph(), testIssues())
	if r1.Fingerprint != r2.Fingerprint {
		t.Error("reports over equal issues differ in fingerprint")
	}
	if r1.RunID == r2.RunID {
		t.Error("run ids must be unique per report")
	}
}

func TestNewSince(t *testing.T) {
	a := issue.Errorf(issue.BrokenLink, "A", "a")
	b := issue.Warnf(issue.DuplicateLink, "B", "b")
	c := issue.Suggestf(issue.DandlingNode, "C", "c")

	tests := []struct {
		name     string
		current  []issue.Issue
		baseline []issue.Issue
		want     []issue.Issue
	}{
		{"no baseline", []issue.Issue{a, b}, nil, []issue.Issue{a, b}},
		{"all known", []issue.Issue{a, b}, []issue.Issue{b, a}, []issue.Issue{}},
		{"one new", []issue.Issue{a, c, b}, []issue.Issue{a, b}, []issue.Issue{c}},
		{"repeats count", []issue.Issue{a, a, a}, []issue.Issue{a, a}, []issue.Issue{a}},
		{"fixed issues ignored", []issue.Issue{a}, []issue.Issue{a, b, c}, []issue.Issue{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSince(tt.current, tt.baseline)
			if !slices.Equal(got, tt.want) {
				t.Errorf("NewSince() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareBaseline(t *testing.T) {
	r, err := New("1.0", testGraph(), testIssues())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r.CompareBaseline("prev.jsonl", testIssues()[:2])

	if r.Baseline == nil || r.Baseline.Path != "prev.jsonl" {
		t.Fatalf("Baseline = %+v", r.Baseline)
	}
	if r.Baseline.Known != 2 || len(r.Baseline.New) != 1 || r.Baseline.New[0].Subject != "REQ_1" {
		t.Errorf("Baseline = %+v, want 2 known and REQ_1 new", r.Baseline)
	}
}

func TestJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.jsonl")
	if err := WriteJSONL(path, testIssues()); err != nil {
		t.Fatalf("WriteJSONL() error = %v", err)
	}

	got, err := ReadJSONL(path)
	if err != nil {
		t.Fatalf("ReadJSONL() error = %v", err)
	}
	if !slices.Equal(got, testIssues()) {
		t.Errorf("ReadJSONL() = %v, want %v", got, testIssues())
	}
}

func TestEncodeJSONL(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSONL(&buf, testIssues()[:1]); err != nil {
		t.Fatalf("EncodeJSONL() error = %v", err)
	}
	want := `{"severity":"error","code":"broken_link","subject":"SPEC_1","detail":"edge SPEC_1 -> GHOST targets unknown node GHOST"}` + "\n"
	if buf.String() != want {
		t.Errorf("EncodeJSONL() = %q, want %q", buf.String(), want)
	}
}

func TestReadJSONL_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadJSONL(filepath.Join(dir, "missing.jsonl")); err == nil {
		t.Error("ReadJSONL() expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.jsonl")
	content := `{"severity":"error","code":"broken_link","subject":"A","detail":"x"}` + "\n\n" + `{"severity":"fatal"}` + "\n"
	if err := os.WriteFile(bad, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadJSONL(bad)
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("ReadJSONL() error = %v, want parse failure on line 3", err)
	}
}
