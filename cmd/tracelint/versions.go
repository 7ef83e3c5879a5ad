package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionsCmd)
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List dataset versions",
	RunE:  runVersions,
}

// VersionsResult is the response for the versions command.
type VersionsResult struct {
	Current  string           `json:"current_version"`
	Versions []VersionSummary `json:"versions"`
}

// VersionSummary describes one dataset version.
type VersionSummary struct {
	Name  string `json:"name"`
	Needs int    `json:"needs"`
}

func runVersions(cmd *cobra.Command, args []string) error {
	ds := mustLoadDataset()

	result := VersionsResult{
		Current:  ds.CurrentVersion,
		Versions: []VersionSummary{},
	}
	for _, name := range ds.VersionNames() {
		result.Versions = append(result.Versions, VersionSummary{Name: name, Needs: len(ds.Versions[name].Needs)})
	}

	if !humanOutput {
		return outputJSON(result)
	}

	for _, v := range result.Versions {
		marker := "  "
		if v.Name == result.Current {
			marker = okStyle.Render("* ")
		}
		fmt.Printf("%s%s %s\n", marker, v.Name, mutedStyle.Render(fmt.Sprintf("(%d needs)", v.Needs)))
	}
	return nil
}
