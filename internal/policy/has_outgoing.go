package policy

import (
	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
)

// hasOutgoing flags selected nodes with fewer than min forward links.
// Malformed params fall back to min 1.
//
// params: {"min": 1}
type hasOutgoing struct{}

type hasOutgoingParams struct {
	Min *int `json:"min"`
}

func (hasOutgoing) ID() string { return RuleHasOutgoing }

func (hasOutgoing) Run(g *graph.Graph, rule *Rule, defaults Defaults) ([]issue.Issue, error) {
	minLinks := 1
	var params hasOutgoingParams
	if err := decodeParams(rule.Params, &params); err == nil && params.Min != nil && *params.Min >= 0 {
		minLinks = *params.Min
	}

	rep := newReporter(rule, defaults, issue.HasOutgoing, "missing required forward links")

	var out []issue.Issue
	for _, id := range selected(g, &rule.Selector) {
		if len(g.Out(id)) < minLinks {
			out = append(out, rep.issue(id))
		}
	}
	return out, nil
}
