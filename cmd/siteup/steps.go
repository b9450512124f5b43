package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/radoslawroszkowiak/siteup/internal/setup"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Inspect import steps",
}

var stepsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available import steps",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDESCRIPTION")
		for _, step := range setup.SortedSteps() {
			fmt.Fprintf(w, "%s\t%s\n", step.ID, step.Description)
		}
		w.Flush()
	},
}

func init() {
	stepsCmd.AddCommand(stepsListCmd)
	rootCmd.AddCommand(stepsCmd)
}
