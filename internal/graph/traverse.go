package graph

import "github.com/tracelint/tracelint/internal/node"

// Hop is a node reached by a breadth-first walk, with its distance from the start.
type Hop struct {
	ID       node.ID
	Distance int
}

// Reachable walks forward adjacency breadth-first from start and returns every
// distinct node at distance 1..maxHops, in visiting order. The start node is
// never included, even when a cycle leads back to it.
func (g *Graph) Reachable(start node.ID, maxHops int) []Hop {
	if maxHops <= 0 {
		return nil
	}

	seen := map[node.ID]bool{start: true}
	queue := []Hop{{ID: start}}
	var out []Hop

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.Distance > 0 {
			out = append(out, cur)
		}
		if cur.Distance == maxHops {
			continue
		}
		for _, next := range g.forward[cur.ID] {
			if seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, Hop{ID: next, Distance: cur.Distance + 1})
		}
	}
	return out
}
