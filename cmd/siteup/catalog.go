package main

import (
	"fmt"
	"os"

	"github.com/radoslawroszkowiak/siteup/internal/catalog"
	"github.com/radoslawroszkowiak/siteup/internal/db"
	"github.com/radoslawroszkowiak/siteup/internal/sites"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the content catalog",
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <subdomain> <query>",
	Short: "Search a site's content catalog",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initRegistryDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		site, err := sites.GetSiteBySubdomain(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := catalog.InitCatalog(db.GetDB()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		results, err := catalog.Search(db.GetDB(), site.ID, args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error searching catalog: %v\n", err)
			os.Exit(1)
		}

		if len(results) == 0 {
			fmt.Println("No results")
			return
		}

		for _, r := range results {
			fmt.Printf("%s (%s)\n  %s\n", r.Title, r.URL, r.Snippet)
		}
	},
}

func init() {
	catalogCmd.AddCommand(catalogSearchCmd)
	rootCmd.AddCommand(catalogCmd)
}
