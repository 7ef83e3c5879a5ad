// Package graph builds and validates the traceability graph of one dataset version.
//
// A Graph is built once by Build and never modified afterwards, so a single
// Graph may be read by any number of goroutines. Construction never fails:
// structural anomalies are recorded as issues and returned with the graph.
package graph

import (
	"slices"

	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

// Graph is the validated model of one dataset version.
type Graph struct {
	nodes map[node.ID]node.Node
	ids   []node.ID // node table ids, ascending

	forward map[node.ID][]node.ID // deduplicated, declaration order
	reverse map[node.ID][]node.ID // sources in ascending order
	kinds   map[node.Kind][]node.ID

	issues []issue.Issue
}

// Edge is one directed forward link.
type Edge struct {
	From node.ID `json:"from"`
	To   node.ID `json:"to"`
}

// NodeCount returns the number of nodes in the node table.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of deduplicated forward edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, outs := range g.forward {
		n += len(outs)
	}
	return n
}

// IDs returns the node ids in ascending order.
func (g *Graph) IDs() []node.ID {
	return slices.Clone(g.ids)
}

// Node returns the node with the given id. The returned value shares its
// slices and Extra map with the graph and must be treated as read-only.
func (g *Graph) Node(id node.ID) (node.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Contains reports whether id is in the node table.
func (g *Graph) Contains(id node.ID) bool {
	_, ok := g.nodes[id]
	return ok
}

// KindOf returns the resolved kind of a node, or KindUnknown when id is not in the table.
func (g *Graph) KindOf(id node.ID) node.Kind {
	n, ok := g.nodes[id]
	if !ok {
		return node.KindUnknown
	}
	return n.Kind()
}

// OfKind returns the ids bucketed under kind, ascending. Read-only.
func (g *Graph) OfKind(k node.Kind) []node.ID {
	return g.kinds[k]
}

// Kinds returns the kinds that have at least one node, in node.AllKinds order.
func (g *Graph) Kinds() []node.Kind {
	var out []node.Kind
	for _, k := range node.AllKinds {
		if len(g.kinds[k]) > 0 {
			out = append(out, k)
		}
	}
	return out
}

// Out returns the forward neighbors of id in declaration order. Read-only.
func (g *Graph) Out(id node.ID) []node.ID {
	return g.forward[id]
}

// In returns the sources linking to id, ascending. Read-only.
func (g *Graph) In(id node.ID) []node.ID {
	return g.reverse[id]
}

// Edges returns every forward edge, grouped by ascending source id.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for _, from := range sortedKeys(g.forward) {
		for _, to := range g.forward[from] {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// Issues returns a copy of the issues recorded during construction.
func (g *Graph) Issues() []issue.Issue {
	return slices.Clone(g.issues)
}

// HasErrors reports whether construction recorded any error-severity issue.
func (g *Graph) HasErrors() bool {
	return issue.HasErrors(g.issues)
}
