package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracelint/tracelint/internal/issue"
)

func init() {
	rootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Summarize the traceability graph",
	Long: `Build the graph of one dataset version and print node and edge counts,
per-kind counts and construction issues. Policies are not evaluated.`,
	RunE: runGraph,
}

// GraphSummary is the response for the graph command.
type GraphSummary struct {
	Version string         `json:"version"`
	Nodes   int            `json:"nodes"`
	Edges   int            `json:"edges"`
	Kinds   map[string]int `json:"kinds"`
	Counts  map[string]int `json:"counts"`
	Issues  []issue.Issue  `json:"issues"`
}

func runGraph(cmd *cobra.Command, args []string) error {
	lg := mustBuildGraph()
	g := lg.graph

	summary := GraphSummary{
		Version: lg.version,
		Nodes:   g.NodeCount(),
		Edges:   g.EdgeCount(),
		Kinds:   make(map[string]int),
		Issues:  g.Issues(),
	}
	for _, k := range g.Kinds() {
		summary.Kinds[k.String()] = len(g.OfKind(k))
	}
	if summary.Issues == nil {
		summary.Issues = []issue.Issue{}
	}
	summary.Counts = issue.CountBySeverity(summary.Issues)

	if !humanOutput {
		return outputJSON(summary)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Graph (version %s)", summary.Version)))
	fmt.Printf("%d nodes, %d edges\n\n", summary.Nodes, summary.Edges)
	for _, k := range g.Kinds() {
		fmt.Printf("  %-10s %d\n", k, summary.Kinds[k.String()])
	}
	if len(summary.Issues) > 0 {
		fmt.Println()
		for _, i := range summary.Issues {
			fmt.Println(formatIssueHuman(i))
		}
	}
	fmt.Printf("\n%s\n", formatCountsHuman(summary.Counts))
	return nil
}
