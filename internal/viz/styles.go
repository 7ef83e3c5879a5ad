package viz

import (
	"encoding/json"
	"fmt"

	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

type kindStyle struct {
	color string
	shape string
}

var kindStyles = map[node.Kind]kindStyle{
	node.KindPerson:    {"#8E44AD", "ellipse"},
	node.KindTeam:      {"#9B59B6", "ellipse"},
	node.KindArch:      {"#2C3E50", "round-rectangle"},
	node.KindSwarch:    {"#34495E", "round-rectangle"},
	node.KindReq:       {"#4A90D9", "round-rectangle"},
	node.KindSwreq:     {"#5DADE2", "round-rectangle"},
	node.KindSpec:      {"#E8923A", "diamond"},
	node.KindTest:      {"#27AE60", "triangle"},
	node.KindTestsuite: {"#1E8449", "triangle"},
	node.KindTestrun:   {"#58D68D", "triangle"},
	node.KindImpl:      {"#7F8C8D", "rectangle"},
	node.KindNeed:      {"#F1C40F", "ellipse"},
	node.KindRelease:   {"#C0392B", "star"},
	node.KindUnknown:   {"#BDC3C7", "ellipse"},
}

var severityBorders = map[issue.Severity]struct {
	color string
	width int
}{
	issue.Suggestion: {"#3498DB", 2},
	issue.Warning:    {"#F39C12", 3},
	issue.Error:      {"#E74C3C", 4},
}

type styleRule struct {
	Selector string         `json:"selector"`
	Style    map[string]any `json:"style"`
}

// stylesheetJSON builds the Cytoscape.js stylesheet: a base node style, one
// rule per kind, then severity borders so the worst issue is always visible.
func stylesheetJSON() (string, error) {
	rules := []styleRule{
		{Selector: "node", Style: map[string]any{
			"label":         "data(label)",
			"color":         "#333",
			"font-size":     "10px",
			"text-valign":   "bottom",
			"text-margin-y": "5px",
			"width":         "mapData(connectionCount, 0, 10, 25, 50)",
			"height":        "mapData(connectionCount, 0, 10, 25, 50)",
		}},
	}

	for _, k := range node.AllKinds {
		s := kindStyles[k]
		rules = append(rules, styleRule{
			Selector: fmt.Sprintf("node[kind=%q]", k),
			Style:    map[string]any{"background-color": s.color, "shape": s.shape},
		})
	}

	for _, sev := range issue.Severities {
		b := severityBorders[sev]
		rules = append(rules, styleRule{
			Selector: fmt.Sprintf("node[severity=%q]", sev),
			Style:    map[string]any{"border-color": b.color, "border-width": b.width},
		})
	}

	rules = append(rules,
		styleRule{Selector: "edge", Style: map[string]any{
			"line-color":         "#95A5A6",
			"target-arrow-color": "#95A5A6",
			"target-arrow-shape": "triangle",
			"curve-style":        "bezier",
			"width":              2,
		}},
		styleRule{Selector: "node.highlighted", Style: map[string]any{"border-width": 3, "border-color": "#ff6b6b"}},
		styleRule{Selector: "node.dimmed", Style: map[string]any{"opacity": 0.3}},
		styleRule{Selector: "edge.dimmed", Style: map[string]any{"opacity": 0.2}},
	)

	data, err := json.Marshal(rules)
	if err != nil {
		return "", fmt.Errorf("marshaling stylesheet: %w", err)
	}
	return string(data), nil
}
