// Package policy evaluates policy documents against a traceability graph.
//
// A policy document is an ordered list of rules. Each rule names one of the
// built-in checks (field_present, has_outgoing, reach_kind), selects the node
// kinds it scans and carries check-specific parameters. Evaluation produces
// issues; it never modifies the graph.
package policy

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

// Policies is a complete policy document.
type Policies struct {
	Version  int      `json:"version" yaml:"version"`
	Defaults Defaults `json:"defaults" yaml:"defaults"`
	Rules    []Rule   `json:"rules" yaml:"rules"`
}

// Defaults apply to every rule that does not override them.
type Defaults struct {
	Severity *issue.Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	MaxHops  *int            `json:"max_hops,omitempty" yaml:"max_hops,omitempty"`
}

// Rule is one named check.
type Rule struct {
	ID       string          `json:"rule_id" yaml:"rule_id"`
	Selector Selector        `json:"selector" yaml:"selector"`
	Params   map[string]any  `json:"params,omitempty" yaml:"params,omitempty"`
	Severity *issue.Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	Code     string          `json:"code,omitempty" yaml:"code,omitempty"`
	Message  string          `json:"message,omitempty" yaml:"message,omitempty"`
}

// Selector chooses the nodes a rule scans.
type Selector struct {
	Kinds []node.Kind `json:"kinds" yaml:"kinds"`

	// IDs optionally restricts the scan to ids matching any of these
	// doublestar patterns ("REQ_*", "fw/**"). Empty selects every id.
	IDs []string `json:"ids,omitempty" yaml:"ids,omitempty"`
}

// Match reports whether id passes the selector's id patterns.
func (s *Selector) Match(id node.ID) bool {
	if len(s.IDs) == 0 {
		return true
	}
	for _, pattern := range s.IDs {
		if ok, err := doublestar.Match(pattern, string(id)); err == nil && ok {
			return true
		}
	}
	return false
}

// Validate checks the document for values that can never evaluate.
// Unknown rule ids are not an error here; the evaluator decides how to treat them.
func (p *Policies) Validate() error {
	if p.Defaults.MaxHops != nil && *p.Defaults.MaxHops < 0 {
		return &SchemaError{Field: "defaults.max_hops", Msg: "must not be negative"}
	}
	for i, r := range p.Rules {
		for _, pattern := range r.Selector.IDs {
			if !doublestar.ValidatePattern(pattern) {
				return &SchemaError{
					Field: fieldPath(i, "selector.ids"),
					Msg:   "invalid pattern " + quote(pattern),
				}
			}
		}
	}
	return nil
}
