package main

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/tracelint/tracelint/internal/dataset"
	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/policy"
)

// loadedGraph is a built graph together with the dataset it came from.
type loadedGraph struct {
	dataset *dataset.Dataset
	version string
	graph   *graph.Graph
}

// mustLoadDataset reads the configured dataset, exits on error.
func mustLoadDataset() *dataset.Dataset {
	ds, err := dataset.Load(cfg.Needs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			exitWithError(ExitConfigError, "needs file not found: %s", cfg.Needs)
		}
		exitWithError(ExitDataError, "loading %s: %v", cfg.Needs, err)
	}
	return ds
}

// mustBuildGraph loads the dataset and builds the graph of the configured
// version, exits on error.
func mustBuildGraph() loadedGraph {
	ds := mustLoadDataset()

	needs, version, err := ds.Access(cfg.Version)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	opts, err := cfg.GraphOptions()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	return loadedGraph{dataset: ds, version: version, graph: graph.Build(needs, opts)}
}

// loadPolicies reads the configured policy document. A missing file is
// reported as ok=false when the caller can do without policies.
func loadPolicies(required bool) (p *policy.Policies, ok bool) {
	p, err := policy.Load(cfg.Policies)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !required {
				slog.Debug("no policy document, skipping evaluation",
					slog.String("component", "cli"), slog.String("path", cfg.Policies))
				return nil, false
			}
			exitWithError(ExitConfigError, "policies file not found: %s", cfg.Policies)
		}
		exitWithError(ExitDataError, "loading %s: %v", cfg.Policies, err)
	}
	return p, true
}

// mustEvaluate runs the policy document against g, exits on error.
func mustEvaluate(g *graph.Graph, p *policy.Policies, strict bool) []issue.Issue {
	e := policy.NewEvaluator(policy.WithStrict(strict || cfg.Strict()))
	found, err := e.Evaluate(g, p)
	if err != nil {
		if errors.Is(err, policy.ErrUnknownRule) {
			exitWithError(ExitConfigError, "evaluating policies: %v", err)
		}
		exitWithError(ExitDataError, "evaluating policies: %v", err)
	}
	return found
}

// collectIssues returns construction issues followed by policy issues.
func collectIssues(lg loadedGraph, policiesRequired, strict bool) []issue.Issue {
	all := lg.graph.Issues()
	if p, ok := loadPolicies(policiesRequired); ok {
		all = append(all, mustEvaluate(lg.graph, p, strict)...)
	}
	if all == nil {
		all = []issue.Issue{}
	}
	return all
}
