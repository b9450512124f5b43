// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
	"github.com/radoslawroszkowiak/siteup/internal/config"
	"github.com/radoslawroszkowiak/siteup/internal/db"
	"github.com/radoslawroszkowiak/siteup/internal/sites"
	"github.com/radoslawroszkowiak/siteup/internal/updater"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run maintenance tools across every site",
	Long: `Runs the selected maintenance tools against every site registered in
this instance. Each site is updated inside one database transaction; per-site
failures abort the run.`,
	Run: func(cmd *cobra.Command, args []string) {
		tools, _ := cmd.Flags().GetString("tools")
		productsArg, _ := cmd.Flags().GetString("products")
		productsRegex, _ := cmd.Flags().GetString("products-regex")
		importSteps, _ := cmd.Flags().GetString("import-steps")
		noLog, _ := cmd.Flags().GetBool("no-log")

		plan, err := updater.ParsePlan(tools, productsArg, productsRegex, importSteps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := initRegistryDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		logger, logFile, err := newUpdateLogger(noLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if logFile != nil {
			defer logFile.Close()
		}

		siteList, err := sites.ListSites(db.GetDB())
		if err != nil {
			logger.Error("failed-to-list-sites", err)
			os.Exit(1)
		}

		runID := uuid.NewString()
		clk := clock.NewClock()
		bundleDir := config.GetString("bundles.dir")

		logger.Info("starting-run", lager.Data{
			"run_id": runID,
			"sites":  len(siteList),
		})

		for i := range siteList {
			site := &siteList[i]
			u := updater.NewSiteUpdater(db.GetDB(), site, plan, logger, clk, bundleDir)
			if err := u.Run(runID); err != nil {
				fmt.Fprintf(os.Stderr, "Error updating site %s: %v\n", site.Subdomain, err)
				os.Exit(1)
			}
		}

		logger.Info("all-done", lager.Data{"run_id": runID, "sites": len(siteList)})
	},
}

func init() {
	updateCmd.Flags().StringP("tools", "t", "all",
		"Comma-separated tools to run (all, workflow, javascript, catalog, reinstall, css)")
	updateCmd.Flags().StringP("products", "p", "",
		"Comma-separated product identifiers to reinstall")
	updateCmd.Flags().StringP("products-regex", "r", "",
		"Regular expression matching product identifiers to reinstall")
	updateCmd.Flags().StringP("import-steps", "s", "",
		"Comma-separated import steps to run")
	updateCmd.Flags().BoolP("no-log", "n", false,
		"Don't create the timestamped log file")
	rootCmd.AddCommand(updateCmd)
}

// newUpdateLogger builds the run logger: always a stdout sink, plus a
// timestamped log file under logging.dir unless suppressed.
func newUpdateLogger(noLog bool) (lager.Logger, *os.File, error) {
	logger := lager.NewLogger("siteup")
	logger.RegisterSink(lager.NewPrettySink(os.Stdout, lager.INFO))

	if noLog {
		return logger, nil, nil
	}

	name := fmt.Sprintf("site_update_%s.log", time.Now().Format("20060102-1504"))
	path := filepath.Join(config.GetString("logging.dir"), name)

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger.RegisterSink(lager.NewWriterSink(f, lager.INFO))
	logger.Info("created-log-file", lager.Data{"path": path})
	return logger, f, nil
}
