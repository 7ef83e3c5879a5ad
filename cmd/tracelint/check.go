package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/report"
)

var (
	checkStrict    bool
	checkFailOn    string
	checkBaseline  string
	checkIssuesOut string
)

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Fail on unknown rule ids instead of skipping them")
	checkCmd.Flags().StringVar(&checkFailOn, "fail-on", "", "Lowest severity that fails the check: error, warning, suggestion (default from config, else error)")
	checkCmd.Flags().StringVar(&checkBaseline, "baseline", "", "Issues JSONL from a previous run; only new issues fail the check")
	checkCmd.Flags().StringVar(&checkIssuesOut, "issues-out", "", "Write all issues to this JSONL file")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the graph and evaluate policies",
	Long: `Build the traceability graph, report construction issues (broken,
duplicate and dangling links), evaluate the policy document and report its
issues.

Exits with code 4 when any issue is at or above --fail-on. With --baseline,
only issues absent from the baseline file count.

Examples:
  tracelint check --needs needs.json --policies policies.yml
  tracelint check --fail-on warning --human
  tracelint check --issues-out issues.jsonl
  tracelint check --baseline main-issues.jsonl`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	failOn, err := resolveFailOn()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	lg := mustBuildGraph()
	issues := collectIssues(lg, true, checkStrict)

	rep, err := report.New(lg.version, lg.graph, issues)
	if err != nil {
		return err
	}

	gating := rep.Issues
	if checkBaseline != "" {
		baseline, err := report.ReadJSONL(checkBaseline)
		if err != nil {
			exitWithError(ExitDataError, "reading baseline: %v", err)
		}
		rep.CompareBaseline(checkBaseline, baseline)
		gating = rep.Baseline.New
	}

	if checkIssuesOut != "" {
		if err := report.WriteJSONL(checkIssuesOut, rep.Issues); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	if humanOutput {
		printCheckHuman(rep, failOn)
	} else if err := outputJSON(rep); err != nil {
		return err
	}

	if issue.AtLeast(gating, failOn) {
		os.Exit(ExitValidationFailed)
	}
	return nil
}

// resolveFailOn applies the --fail-on flag over the configured value.
func resolveFailOn() (issue.Severity, error) {
	if checkFailOn == "" {
		return cfg.FailOnSeverity()
	}
	sev, err := issue.ParseSeverity(checkFailOn)
	if err != nil {
		return 0, fmt.Errorf("--fail-on: %w", err)
	}
	return sev, nil
}

func printCheckHuman(rep *report.Report, failOn issue.Severity) {
	header := fmt.Sprintf("Traceability check (version %s)", rep.Version)
	fmt.Println(titleStyle.Render(header))
	fmt.Println()

	if len(rep.Issues) == 0 {
		fmt.Println(okStyle.Render("OK") + " no issues found")
	}
	for _, i := range rep.Issues {
		fmt.Println(formatIssueHuman(i))
	}
	if len(rep.Issues) > 0 {
		fmt.Println()
	}

	fmt.Printf("%d nodes, %d edges: %s\n", rep.Nodes, rep.Edges, formatCountsHuman(rep.Counts))
	if rep.Baseline != nil {
		fmt.Printf("baseline %s: %d known, %d new\n", rep.Baseline.Path, rep.Baseline.Known, len(rep.Baseline.New))
	}
	fmt.Println(mutedStyle.Render(fmt.Sprintf("fail-on %s, fingerprint %s", failOn, rep.Fingerprint)))
}
