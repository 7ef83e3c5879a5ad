package policy

import (
	"log/slog"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
)

// Evaluator runs policy documents against graphs. An Evaluator holds no
// per-run state; one value may serve many goroutines.
type Evaluator struct {
	registry Registry
	strict   bool
	logger   *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithStrict makes unknown rule ids fail the evaluation with ErrUnknownRule
// instead of being skipped.
func WithStrict(strict bool) Option {
	return func(e *Evaluator) { e.strict = strict }
}

// WithLogger sets the logger used for skipped-rule warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEvaluator returns an evaluator over the built-in checks.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		registry: Builtins(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(slog.String("component", "policy"))
	return e
}

// Evaluate applies every rule of p to g in document order and concatenates
// their issues. The first rule error aborts the run; no partial result is
// returned. g is only read.
func (e *Evaluator) Evaluate(g *graph.Graph, p *Policies) ([]issue.Issue, error) {
	out := []issue.Issue{}
	for i := range p.Rules {
		rule := &p.Rules[i]

		check, ok := e.registry.Lookup(rule.ID)
		if !ok {
			if e.strict {
				return nil, &RuleError{Index: i, RuleID: rule.ID, Err: ErrUnknownRule}
			}
			e.logger.Warn("skipping unknown rule",
				slog.Int("index", i),
				slog.String("rule_id", rule.ID))
			continue
		}

		found, err := check.Run(g, rule, p.Defaults)
		if err != nil {
			return nil, &RuleError{Index: i, RuleID: rule.ID, Err: err}
		}
		e.logger.Debug("rule evaluated",
			slog.Int("index", i),
			slog.String("rule_id", rule.ID),
			slog.Int("issues", len(found)))
		out = append(out, found...)
	}
	return out, nil
}

// Evaluate applies p to g with a default Evaluator.
func Evaluate(g *graph.Graph, p *Policies) ([]issue.Issue, error) {
	return NewEvaluator().Evaluate(g, p)
}
