package main

import (
	"strings"
	"testing"

	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/policy"
)

func TestFormatIssueHuman(t *testing.T) {
	tests := []struct {
		name string
		in   issue.Issue
		want []string
	}{
		{
			name: "error",
			in:   issue.Errorf(issue.BrokenLink, "REQ_1", "edge REQ_1 -> SPEC_X targets unknown node SPEC_X"),
			want: []string{"[ERROR]", "broken_link", "REQ_1:", "targets unknown node SPEC_X"},
		},
		{
			name: "warning",
			in:   issue.Warnf(issue.DuplicateLink, "SPEC_1", "duplicate"),
			want: []string{"[WARN]", "duplicate_link", "SPEC_1:"},
		},
		{
			name: "suggestion",
			in:   issue.Suggestf(issue.DandlingNode, "X", "dangling"),
			want: []string{"[HINT]", "dandling_node", "X: dangling"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatIssueHuman(tt.in)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("formatIssueHuman() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestFormatCountsHuman(t *testing.T) {
	got := formatCountsHuman(map[string]int{"error": 2, "warning": 0, "suggestion": 1})
	errIdx := strings.Index(got, "2 error")
	warnIdx := strings.Index(got, "0 warning")
	sugIdx := strings.Index(got, "1 suggestion")
	if errIdx < 0 || warnIdx < 0 || sugIdx < 0 {
		t.Fatalf("formatCountsHuman() = %q, missing a severity", got)
	}
	if !(errIdx < warnIdx && warnIdx < sugIdx) {
		t.Errorf("formatCountsHuman() = %q, want most severe first", got)
	}
}

func TestJoinOrNone(t *testing.T) {
	if got := joinOrNone([]string{"A", "B"}); got != "A, B" {
		t.Errorf("joinOrNone() = %q, want %q", got, "A, B")
	}
	if got := joinOrNone(nil); !strings.Contains(got, "(none)") {
		t.Errorf("joinOrNone(nil) = %q, want (none)", got)
	}
}

func TestRuleInfoCoversBuiltins(t *testing.T) {
	ids := policy.Builtins().IDs()
	if len(ruleInfo) != len(ids) {
		t.Errorf("ruleInfo has %d entries, want %d", len(ruleInfo), len(ids))
	}
	for _, id := range ids {
		if info, ok := ruleInfo[id]; !ok || info.Summary == "" {
			t.Errorf("ruleInfo missing description for %s", id)
		}
	}
}
