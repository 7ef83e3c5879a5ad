package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracelint/tracelint/internal/policy"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List built-in policy rules",
	RunE:  runRules,
}

// RuleInfo describes a built-in rule for the rules command.
type RuleInfo struct {
	ID      string `json:"rule_id"`
	Summary string `json:"summary"`
	Params  string `json:"params"`
}

var ruleInfo = map[string]RuleInfo{
	policy.RuleFieldPresent: {
		Summary: "selected nodes must have a non-empty field",
		Params:  `{"field": "url"}`,
	},
	policy.RuleHasOutgoing: {
		Summary: "selected nodes must have at least min forward links",
		Params:  `{"min": 1}`,
	},
	policy.RuleReachKind: {
		Summary: "selected nodes must reach at least min nodes of the target kinds within max_hops",
		Params:  `{"target_kinds": ["test"], "min": 1, "max_hops": 2}`,
	},
}

func runRules(cmd *cobra.Command, args []string) error {
	ids := policy.Builtins().IDs()
	rules := make([]RuleInfo, 0, len(ids))
	for _, id := range ids {
		info := ruleInfo[id]
		info.ID = id
		rules = append(rules, info)
	}

	if !humanOutput {
		return outputJSON(rules)
	}
	for _, r := range rules {
		fmt.Printf("%s\n  %s\n  %s\n\n", titleStyle.Render(r.ID), r.Summary, mutedStyle.Render("params: "+r.Params))
	}
	return nil
}
