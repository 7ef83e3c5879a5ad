package policy

import (
	"encoding/json"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

// defaultMaxHops bounds reach_kind walks when neither the rule nor the
// document defaults say otherwise.
const defaultMaxHops = 2

// decodeParams converts a rule's free-form params into a typed struct.
// A nil payload leaves v untouched.
func decodeParams(payload map[string]any, v any) error {
	if payload == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// reporter carries the severity, code and message a rule's issues use.
type reporter struct {
	severity issue.Severity
	code     issue.Code
	message  string
}

// newReporter resolves rule overrides, then document defaults (severity
// only), then the check's fallbacks.
func newReporter(rule *Rule, defaults Defaults, code issue.Code, message string) reporter {
	r := reporter{
		severity: issue.Error,
		code:     code,
		message:  message,
	}
	switch {
	case rule.Severity != nil:
		r.severity = *rule.Severity
	case defaults.Severity != nil:
		r.severity = *defaults.Severity
	}
	if rule.Code != "" {
		r.code = issue.CodeFromRule(rule.Code)
	}
	if rule.Message != "" {
		r.message = rule.Message
	}
	return r
}

func (r reporter) issue(subject node.ID) issue.Issue {
	return issue.New(r.severity, r.code, subject, r.message)
}

// selected returns the ids a selector scans: kinds in selector order, ids
// ascending within each kind.
func selected(g *graph.Graph, sel *Selector) []node.ID {
	var ids []node.ID
	for _, k := range sel.Kinds {
		for _, id := range g.OfKind(k) {
			if sel.Match(id) {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
