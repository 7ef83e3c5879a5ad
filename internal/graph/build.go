package graph

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

// Options configures graph construction.
type Options struct {
	// DanglingExempt lists kinds that are never reported as dangling.
	DanglingExempt []node.Kind
}

// DefaultOptions returns the default construction options: people and teams
// are expected to have no links and are exempt from dangling checks.
func DefaultOptions() Options {
	return Options{
		DanglingExempt: []node.Kind{node.KindPerson, node.KindTeam},
	}
}

// New builds a graph with DefaultOptions.
func New(nodes map[node.ID]node.Node) *Graph {
	return Build(nodes, DefaultOptions())
}

// Build constructs and validates the graph of one node table. The input map
// and its nodes are not modified; the graph keeps its own deep copy.
func Build(nodes map[node.ID]node.Node, opts Options) *Graph {
	table := make(map[node.ID]node.Node, len(nodes))
	for id, n := range nodes {
		c := n.Clone()
		// The table key is the identity; a need may omit its inner id.
		if strings.TrimSpace(string(c.ID)) == "" {
			c.ID = id
		}
		table[id] = c
	}
	ids := sortedKeys(table)

	forward, issues := seedForward(table, ids)
	reverse := seedReverse(forward, ids)
	kinds := seedKinds(table, ids)

	issues = append(issues, validateConsistency(table, forward, reverse)...)
	issues = append(issues, validateKinds(table, ids, kinds)...)
	issues = append(issues, validateDangling(table, ids, forward, reverse, opts.DanglingExempt)...)

	slog.Debug("graph built",
		slog.String("component", "graph"),
		slog.Int("nodes", len(table)),
		slog.Int("issues", len(issues)))

	return &Graph{
		nodes:   table,
		ids:     ids,
		forward: forward,
		reverse: reverse,
		kinds:   kinds,
		issues:  issues,
	}
}

// seedForward builds deduplicated forward adjacency. The first declaration of
// a target is the edge; every later repeat from the same source is dropped
// with one DuplicateLink warning.
func seedForward(table map[node.ID]node.Node, ids []node.ID) (map[node.ID][]node.ID, []issue.Issue) {
	forward := make(map[node.ID][]node.ID, len(table))
	var issues []issue.Issue

	for _, id := range ids {
		n := table[id]
		seen := make(map[node.ID]int, len(n.Links))
		linked := make([]node.ID, 0, len(n.Links))

		for _, target := range n.Links {
			seen[target]++
			if seen[target] == 1 {
				linked = append(linked, target)
				continue
			}
			issues = append(issues, issue.Warnf(issue.DuplicateLink, id,
				"duplicate link %s -> %s (repeat %d)", id, target, seen[target]-1))
		}
		forward[id] = linked
	}
	return forward, issues
}

// seedReverse inverts forward adjacency. Every source gets a reverse entry and
// every target outside the node table gets an empty forward entry, so both
// maps always share one key set.
func seedReverse(forward map[node.ID][]node.ID, ids []node.ID) map[node.ID][]node.ID {
	reverse := make(map[node.ID][]node.ID, len(forward))

	for _, id := range ids {
		if _, ok := reverse[id]; !ok {
			reverse[id] = []node.ID{}
		}
		for _, target := range forward[id] {
			reverse[target] = append(reverse[target], id)
		}
	}
	for target := range reverse {
		if _, ok := forward[target]; !ok {
			forward[target] = []node.ID{}
		}
	}
	return reverse
}

// seedKinds buckets every node id under its resolved kind.
func seedKinds(table map[node.ID]node.Node, ids []node.ID) map[node.Kind][]node.ID {
	kinds := make(map[node.Kind][]node.ID)
	for _, id := range ids {
		n := table[id]
		k := n.Kind()
		kinds[k] = append(kinds[k], id)
	}
	return kinds
}

func sortedKeys[V any](m map[node.ID]V) []node.ID {
	return slices.Sorted(maps.Keys(m))
}
