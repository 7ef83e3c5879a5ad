package policy

import (
	"slices"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
)

// Built-in rule ids.
const (
	RuleFieldPresent = "field_present"
	RuleHasOutgoing  = "has_outgoing"
	RuleReachKind    = "reach_kind"
)

// Check is one built-in rule implementation. Run scans the nodes chosen by
// rule.Selector and returns the violations it finds. Checks only read g.
type Check interface {
	ID() string
	Run(g *graph.Graph, rule *Rule, defaults Defaults) ([]issue.Issue, error)
}

// Registry maps rule ids to checks. It is fixed at construction and safe for
// concurrent use.
type Registry struct {
	checks map[string]Check
	ids    []string
}

func newRegistry(checks ...Check) Registry {
	r := Registry{checks: make(map[string]Check, len(checks))}
	for _, c := range checks {
		r.checks[c.ID()] = c
		r.ids = append(r.ids, c.ID())
	}
	slices.Sort(r.ids)
	return r
}

var builtins = newRegistry(fieldPresent{}, hasOutgoing{}, reachKind{})

// Builtins returns the registry of built-in checks.
func Builtins() Registry {
	return builtins
}

// Lookup returns the check registered under id.
func (r Registry) Lookup(id string) (Check, bool) {
	c, ok := r.checks[id]
	return c, ok
}

// IDs returns the registered rule ids in ascending order.
func (r Registry) IDs() []string {
	return slices.Clone(r.ids)
}
