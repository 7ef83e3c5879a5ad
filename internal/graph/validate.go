package graph

import (
	"slices"

	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

// validateConsistency checks that forward and reverse adjacency mirror each
// other and that every edge points into the node table.
func validateConsistency(table map[node.ID]node.Node, forward, reverse map[node.ID][]node.ID) []issue.Issue {
	var issues []issue.Issue

	for _, id := range sortedKeys(forward) {
		if _, ok := reverse[id]; !ok {
			issues = append(issues, issue.Errorf(issue.BrokenLink, id,
				"node %s is missing from reverse adjacency", id))
		}
	}
	for _, id := range sortedKeys(reverse) {
		if _, ok := forward[id]; !ok {
			issues = append(issues, issue.Errorf(issue.BrokenLink, id,
				"node %s is missing from forward adjacency", id))
		}
	}

	for _, source := range sortedKeys(forward) {
		for _, target := range forward[source] {
			if _, ok := table[target]; !ok {
				issues = append(issues, issue.Errorf(issue.BrokenLink, source,
					"edge %s -> %s targets unknown node %s", source, target, target))
			}

			sources, ok := reverse[target]
			if !ok {
				issues = append(issues, issue.Errorf(issue.BrokenLink, source,
					"edge %s -> %s not found in reverse adjacency", source, target))
				continue
			}
			switch count := countOf(sources, source); {
			case count == 0:
				issues = append(issues, issue.Errorf(issue.BrokenLink, source,
					"reverse adjacency of %s is missing %s", target, source))
			case count > 1:
				issues = append(issues, issue.Warnf(issue.DuplicateLink, target,
					"reverse adjacency of %s contains %s %d times", target, source, count))
			}
		}
	}

	return issues
}

// validateKinds checks that every node sits exactly once in the bucket of its kind.
func validateKinds(table map[node.ID]node.Node, ids []node.ID, kinds map[node.Kind][]node.ID) []issue.Issue {
	var issues []issue.Issue

	for _, id := range ids {
		n := table[id]
		k := n.Kind()

		bucket, ok := kinds[k]
		if !ok {
			issues = append(issues, issue.Errorf(issue.BrokenLink, id,
				"node missing from kind index %s", k))
			continue
		}
		switch count := countOf(bucket, id); {
		case count == 0:
			issues = append(issues, issue.Errorf(issue.BrokenLink, id,
				"node not found in kind index %s", k))
		case count > 1:
			issues = append(issues, issue.Warnf(issue.DuplicateLink, id,
				"node listed %d times in kind index %s", count, k))
		}
	}

	return issues
}

// validateDangling suggests a look at nodes with no links in either direction.
func validateDangling(table map[node.ID]node.Node, ids []node.ID, forward, reverse map[node.ID][]node.ID, exempt []node.Kind) []issue.Issue {
	var issues []issue.Issue

	for _, id := range ids {
		n := table[id]
		if slices.Contains(exempt, n.Kind()) {
			continue
		}
		if len(forward[id]) == 0 && len(reverse[id]) == 0 {
			issues = append(issues, issue.Suggestf(issue.DandlingNode, id,
				"node %s is dangling (no forward or reverse links)", id))
		}
	}

	return issues
}

func countOf(ids []node.ID, want node.ID) int {
	n := 0
	for _, id := range ids {
		if id == want {
			n++
		}
	}
	return n
}
