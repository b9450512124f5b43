// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "siteup",
	Short: "siteup - bulk maintenance for multi-site CMS instances",
	Long: `siteup performs bulk maintenance across every site hosted in one CMS
application instance: reinstalling add-on products, rebuilding the content
catalog, re-cooking merged javascript/css bundles, re-applying workflow role
mappings, and replaying configuration import steps.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
