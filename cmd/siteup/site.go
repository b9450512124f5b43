// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/radoslawroszkowiak/siteup/internal/config"
	"github.com/radoslawroszkowiak/siteup/internal/db"
	"github.com/radoslawroszkowiak/siteup/internal/export"
	"github.com/radoslawroszkowiak/siteup/internal/products"
	"github.com/radoslawroszkowiak/siteup/internal/sites"
	"github.com/spf13/cobra"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Inspect sites",
	Long:  "List sites, their installed products, and export their content",
}

var siteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sites",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initRegistryDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		siteList, err := sites.ListSites(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing sites: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSUBDOMAIN\tTITLE\tCREATED")
		for _, s := range siteList {
			title := s.SiteTitle
			if title == "" {
				title = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				s.ID, s.Subdomain, title, s.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var siteProductsCmd = &cobra.Command{
	Use:   "products <subdomain>",
	Short: "List a site's registered products",
	Args:  cobra.ExactArgs(1),
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

		prods, err := products.ListProducts(db.GetDB(), site.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTIFIER\tSTATUS\tINSTALLED\tAVAILABLE")
		for _, p := range prods {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				p.Identifier, p.Status, p.InstalledVersion, p.Version)
		}
		w.Flush()
	},
}

var siteExportCmd = &cobra.Command{
	Use:   "export <subdomain>",
	Short: "Write a gzipped JSON export of a site's content",
	Args:  cobra.ExactArgs(1),
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

		exporter := export.NewSiteExporter(config.GetString("storage.exports_dir"))
		path, err := exporter.CreateSiteExport(db.GetDB(), site)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting site: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Site exported: %s\n", path)
	},
}

func init() {
	siteCmd.AddCommand(siteListCmd)
	siteCmd.AddCommand(siteProductsCmd)
	siteCmd.AddCommand(siteExportCmd)
	rootCmd.AddCommand(siteCmd)
}
