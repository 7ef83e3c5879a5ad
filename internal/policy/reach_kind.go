package policy

import (
	"slices"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

// reachKind flags selected nodes that reach fewer than min distinct nodes of
// the target kinds within max_hops forward hops.
//
// params: {"target_kinds": ["test"], "min": 1, "max_hops": 2}
type reachKind struct{}

type reachKindParams struct {
	TargetKinds []node.Kind `json:"target_kinds"`
	Min         *int        `json:"min"`
	MaxHops     *int        `json:"max_hops"`
}

// valid reports whether the decoded params are usable as written.
func (p *reachKindParams) valid() bool {
	if p.TargetKinds == nil {
		return false
	}
	if p.Min != nil && *p.Min < 0 {
		return false
	}
	if p.MaxHops != nil && *p.MaxHops < 0 {
		return false
	}
	return true
}

func (reachKind) ID() string { return RuleReachKind }

func (reachKind) Run(g *graph.Graph, rule *Rule, defaults Defaults) ([]issue.Issue, error) {
	var params reachKindParams
	if err := decodeParams(rule.Params, &params); err != nil || !params.valid() {
		// No targets: every selected node falls short of min 1.
		params = reachKindParams{}
	}

	minHits := 1
	if params.Min != nil && *params.Min > minHits {
		minHits = *params.Min
	}
	maxHops := defaultMaxHops
	switch {
	case params.MaxHops != nil:
		maxHops = *params.MaxHops
	case defaults.MaxHops != nil:
		maxHops = *defaults.MaxHops
	}

	rep := newReporter(rule, defaults, issue.ReachKind, "missing required reachable target")

	var out []issue.Issue
	for _, id := range selected(g, &rule.Selector) {
		hits := 0
		for _, hop := range g.Reachable(id, maxHops) {
			n, ok := g.Node(hop.ID)
			if ok && slices.Contains(params.TargetKinds, n.Kind()) {
				hits++
			}
		}
		if hits < minHits {
			out = append(out, rep.issue(id))
		}
	}
	return out, nil
}
