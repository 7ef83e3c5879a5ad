// Package viz renders a traceability graph as an interactive HTML page.
package viz

// GraphData contains all data needed to render the visualization.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one traceability node as drawn.
type Node struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`

	// Tooltip fields
	Title  string   `json:"title,omitempty"`
	Status string   `json:"status,omitempty"`
	URL    string   `json:"url,omitempty"`
	Issues []string `json:"issues,omitempty"`

	// Severity is the worst issue severity about the node, empty when clean.
	Severity string `json:"severity,omitempty"`

	// Sizing
	ConnectionCount int `json:"connectionCount"`
}

// Edge is a forward link between two drawn nodes.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}
