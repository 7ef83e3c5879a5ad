package viz

import (
	"errors"
	"strings"
	"testing"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

func testGraph() *graph.Graph {
	return graph.New(map[node.ID]node.Node{
		"REQ_1":  {ID: "REQ_1", Type: "req", Title: "Login <b>works</b>", Links: []node.ID{"SPEC_1", "GHOST"}},
		"SPEC_1": {ID: "SPEC_1", Type: "spec", Links: []node.ID{"TEST_1"}},
		"TEST_1": {ID: "TEST_1", Type: "test", Status: "passing"},
	})
}

func TestFromGraph_NodesWithoutInnerID(t *testing.T) {
	g := graph.New(map[node.ID]node.Node{
		"REQ_1":  {Type: "req", Links: []node.ID{"SPEC_1"}},
		"SPEC_1": {Type: "spec"},
	})
	data := FromGraph(g, nil)

	drawn := make(map[string]bool)
	for _, n := range data.Nodes {
		if n.ID == "" || n.Label == "" {
			t.Errorf("node drawn without identity: %+v", n)
		}
		drawn[n.ID] = true
	}
	if len(drawn) != 2 {
		t.Errorf("distinct node ids = %d, want 2", len(drawn))
	}
	for _, e := range data.Edges {
		if !drawn[e.Source] || !drawn[e.Target] {
			t.Errorf("edge %s -> %s ends at a node that is not drawn", e.Source, e.Target)
		}
	}
	if len(data.Edges) != 1 {
		t.Errorf("Edges = %v, want one", data.Edges)
	}
}

func TestFromGraph(t *testing.T) {
	issues := []issue.Issue{
		issue.Suggestf(issue.DandlingNode, "SPEC_1", "hint"),
		issue.Errorf(issue.BrokenLink, "REQ_1", "edge REQ_1 -> GHOST targets unknown node GHOST"),
		issue.Warnf(issue.HasOutgoing, "REQ_1", "warn"),
	}
	data := FromGraph(testGraph(), issues)

	if len(data.Nodes) != 3 {
		t.Fatalf("len(Nodes) = %d, want 3", len(data.Nodes))
	}
	wantIDs := []string{"REQ_1", "SPEC_1", "TEST_1"}
	for i, n := range data.Nodes {
		if n.ID != wantIDs[i] {
			t.Errorf("Nodes[%d].ID = %q, want %q", i, n.ID, wantIDs[i])
		}
	}

	req := data.Nodes[0]
	if req.Kind != "req" || req.Severity != "error" || len(req.Issues) != 2 {
		t.Errorf("REQ_1 = %+v, want kind req, severity error, 2 issues", req)
	}
	if req.ConnectionCount != 2 {
		t.Errorf("REQ_1 connections = %d, want 2 (the GHOST link counts)", req.ConnectionCount)
	}
	if data.Nodes[1].Severity != "suggestion" {
		t.Errorf("SPEC_1 severity = %q, want suggestion", data.Nodes[1].Severity)
	}
	if data.Nodes[2].Severity != "" || data.Nodes[2].Issues != nil {
		t.Errorf("TEST_1 = %+v, want no issues", data.Nodes[2])
	}

	wantEdges := []Edge{{"REQ_1", "SPEC_1"}, {"SPEC_1", "TEST_1"}}
	if len(data.Edges) != len(wantEdges) {
		t.Fatalf("Edges = %v, want %v", data.Edges, wantEdges)
	}
	for i, e := range wantEdges {
		if data.Edges[i] != e {
			t.Errorf("Edges[%d] = %v, want %v", i, data.Edges[i], e)
		}
	}
}

func TestToCytoscapeJSON(t *testing.T) {
	data := FromGraph(testGraph(), nil)
	got, err := data.ToCytoscapeJSON()
	if err != nil {
		t.Fatalf("ToCytoscapeJSON() error = %v", err)
	}
	for _, want := range []string{`"id":"REQ_1->SPEC_1"`, `"kind":"spec"`, `"status":"passing"`} {
		if !strings.Contains(got, want) {
			t.Errorf("ToCytoscapeJSON() missing %s in %s", want, got)
		}
	}
}

func TestGenerateHTML(t *testing.T) {
	tests := []struct {
		name       string
		layout     string
		wantLayout string
	}{
		{"default", "", `"cose"`},
		{"force", "force", `"cose"`},
		{"circle", "circle", `"circle"`},
		{"grid", "grid", `"grid"`},
		{"tree", "tree", `"breadthfirst"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := GenerateHTML(FromGraph(testGraph(), nil), HTMLOptions{Layout: tt.layout})
			if err != nil {
				t.Fatalf("GenerateHTML() error = %v", err)
			}
			if !strings.Contains(html, "const layout = "+tt.wantLayout) {
				t.Errorf("layout %s not rendered", tt.wantLayout)
			}
			if !strings.Contains(html, "<title>Traceability graph</title>") {
				t.Error("default title missing")
			}
			if !strings.Contains(html, `node[kind=\"req\"]`) && !strings.Contains(html, `node[kind="req"]`) {
				t.Error("kind stylesheet missing")
			}
		})
	}
}

func TestGenerateHTML_InvalidLayout(t *testing.T) {
	_, err := GenerateHTML(FromGraph(testGraph(), nil), HTMLOptions{Layout: "spiral"})
	if !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("GenerateHTML() error = %v, want ErrInvalidLayout", err)
	}
}

func TestGenerateHTML_Nil(t *testing.T) {
	if _, err := GenerateHTML(nil, DefaultOptions()); err == nil {
		t.Error("GenerateHTML(nil) expected error")
	}
}

func TestGenerateHTML_Empty(t *testing.T) {
	html, err := GenerateHTML(FromGraph(graph.New(nil), nil), HTMLOptions{Title: "release 1.0"})
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if !strings.Contains(html, "No nodes") || strings.Contains(html, "cytoscape.min.js") {
		t.Error("empty graph should render the empty state without Cytoscape")
	}
	if !strings.Contains(html, "<title>release 1.0</title>") {
		t.Error("custom title missing")
	}
}

func TestGenerateHTML_EscapesTitle(t *testing.T) {
	html, err := GenerateHTML(FromGraph(testGraph(), nil), HTMLOptions{Title: "<script>x</script>"})
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if strings.Contains(html, "<title><script>") {
		t.Error("title was not escaped")
	}
}
