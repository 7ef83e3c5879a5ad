package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/node"
)

var neighborsHops int

func init() {
	neighborsCmd.Flags().IntVar(&neighborsHops, "hops", 0, "Also list every node reachable within this many forward hops")
	rootCmd.AddCommand(neighborsCmd)
}

var neighborsCmd = &cobra.Command{
	Use:   "neighbors <id>",
	Short: "Show the links of one node",
	Long: `Show the outgoing and incoming neighbors of a node. With --hops N, also
list the nodes reachable within N forward hops and their distance.`,
	Args: cobra.ExactArgs(1),
	RunE: runNeighbors,
}

// NeighborsResult is the response for the neighbors command.
type NeighborsResult struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Title     string   `json:"title,omitempty"`
	Outgoing  []string `json:"outgoing"`
	Incoming  []string `json:"incoming"`
	Reachable []Reach  `json:"reachable,omitempty"`
}

// Reach is a node found by a bounded forward walk.
type Reach struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Distance int    `json:"distance"`
}

func runNeighbors(cmd *cobra.Command, args []string) error {
	if neighborsHops < 0 {
		exitWithError(ExitError, "--hops must not be negative")
	}

	g := mustBuildGraph().graph
	id := node.ID(args[0])

	n, ok := g.Node(id)
	if !ok {
		exitWithError(ExitDataError, "node %s not found", id)
	}

	result := NeighborsResult{
		ID:       string(id),
		Kind:     n.Kind().String(),
		Title:    n.Title,
		Outgoing: idStrings(g.Out(id)),
		Incoming: idStrings(g.In(id)),
	}
	for _, hop := range g.Reachable(id, neighborsHops) {
		result.Reachable = append(result.Reachable, Reach{
			ID:       string(hop.ID),
			Kind:     kindLabel(g, hop.ID),
			Distance: hop.Distance,
		})
	}

	if !humanOutput {
		return outputJSON(result)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%s)", result.ID, result.Kind)))
	if result.Title != "" {
		fmt.Println(result.Title)
	}
	fmt.Printf("\n  out: %s\n", joinOrNone(result.Outgoing))
	fmt.Printf("  in:  %s\n", joinOrNone(result.Incoming))
	if len(result.Reachable) > 0 {
		fmt.Println()
		for _, r := range result.Reachable {
			fmt.Printf("  %d  %s (%s)\n", r.Distance, r.ID, r.Kind)
		}
	}
	return nil
}

// kindLabel names the kind of a reachable id; ids outside the node table
// have no kind of their own.
func kindLabel(g *graph.Graph, id node.ID) string {
	if !g.Contains(id) {
		return "missing"
	}
	return g.KindOf(id).String()
}

func idStrings(ids []node.ID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return mutedStyle.Render("(none)")
	}
	return strings.Join(ids, ", ")
}
