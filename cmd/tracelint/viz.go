package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracelint/tracelint/internal/viz"
)

var vizOutput string
var vizLayout string

func init() {
	vizCmd.Flags().StringVarP(&vizOutput, "output", "o", "", "Output file path (default: stdout)")
	vizCmd.Flags().StringVar(&vizLayout, "layout", "force", "Layout algorithm: force, circle, grid, or tree")
	rootCmd.AddCommand(vizCmd)
}

var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Generate traceability graph visualization",
	Long: `Generate an interactive HTML visualization of the traceability graph.

Nodes are colored and shaped by kind; a node's border shows the worst issue
about it (red: error, amber: warning, blue: suggestion). Policies are
evaluated when the policy document exists.

Examples:
  # Generate HTML to stdout
  tracelint viz > graph.html

  # Top-down layout, written to a file
  tracelint viz --layout tree --output graph.html`,
	RunE: runViz,
}

func runViz(cmd *cobra.Command, args []string) error {
	lg := mustBuildGraph()
	issues := collectIssues(lg, false, false)

	opts := viz.HTMLOptions{
		Layout: vizLayout,
		Title:  fmt.Sprintf("Traceability graph %s", lg.version),
	}
	html, err := viz.GenerateHTML(viz.FromGraph(lg.graph, issues), opts)
	if err != nil {
		exitWithError(ExitError, "generating HTML: %v", err)
	}

	if vizOutput == "" {
		fmt.Print(html)
		return nil
	}

	if err := os.WriteFile(vizOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if humanOutput {
		fmt.Printf("Visualization written to %s\n", vizOutput)
		return nil
	}
	return outputJSON(OutputResponse{Output: vizOutput})
}
