package viz

import (
	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

// FromGraph builds the drawable form of g. Nodes are annotated with the
// issues whose subject they are. Edges to ids outside the node table are
// dropped since there is nothing to draw at their end.
func FromGraph(g *graph.Graph, issues []issue.Issue) *GraphData {
	bySubject := groupIssues(issues)

	data := &GraphData{
		Nodes: make([]Node, 0, g.NodeCount()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for _, id := range g.IDs() {
		n, _ := g.Node(id)
		data.Nodes = append(data.Nodes, newNode(id, n, len(g.Out(id))+len(g.In(id)), bySubject[id]))
	}
	for _, e := range g.Edges() {
		if !g.Contains(e.To) {
			continue
		}
		data.Edges = append(data.Edges, Edge{Source: string(e.From), Target: string(e.To)})
	}
	return data
}

func groupIssues(issues []issue.Issue) map[node.ID][]issue.Issue {
	out := make(map[node.ID][]issue.Issue)
	for _, i := range issues {
		out[i.Subject] = append(out[i.Subject], i)
	}
	return out
}

// newNode creates a visualization node from a traceability node and its issues.
// The node is identified by its table key, the id every edge refers to.
func newNode(id node.ID, n node.Node, connections int, issues []issue.Issue) Node {
	v := Node{
		ID:              string(id),
		Kind:            n.Kind().String(),
		Label:           string(id),
		Title:           n.Title,
		Status:          n.Status,
		URL:             n.URL,
		ConnectionCount: connections,
	}
	if len(issues) == 0 {
		return v
	}

	worst := issues[0].Severity
	for _, i := range issues {
		v.Issues = append(v.Issues, i.Code.String()+": "+i.Detail)
		if i.Severity > worst {
			worst = i.Severity
		}
	}
	v.Severity = worst.String()
	return v
}
