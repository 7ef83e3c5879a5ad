package policy

import (
	"fmt"
	"strings"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
)

// fieldPresent flags selected nodes that lack a named field.
//
// params: {"field": "url"}
type fieldPresent struct{}

type fieldPresentParams struct {
	Field string `json:"field"`
}

func (fieldPresent) ID() string { return RuleFieldPresent }

func (fieldPresent) Run(g *graph.Graph, rule *Rule, defaults Defaults) ([]issue.Issue, error) {
	var params fieldPresentParams
	if err := decodeParams(rule.Params, &params); err != nil {
		return nil, fmt.Errorf("%w: field_present: %v", ErrInvalidParams, err)
	}
	if strings.TrimSpace(params.Field) == "" {
		return nil, fmt.Errorf("%w: field_present requires a non-empty \"field\"", ErrInvalidParams)
	}

	rep := newReporter(rule, defaults, issue.FieldPresent, "required field missing")

	var out []issue.Issue
	for _, id := range selected(g, &rule.Selector) {
		n, _ := g.Node(id)
		if !n.HasField(params.Field) {
			out = append(out, rep.issue(id))
		}
	}
	return out, nil
}
