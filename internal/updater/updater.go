// SPDX-License-Identifier: MIT

// Package updater runs the selected maintenance operations against each site,
// one transaction per site.
package updater

import (
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/radoslawroszkowiak/siteup/internal/assets"
	"github.com/radoslawroszkowiak/siteup/internal/catalog"
	"github.com/radoslawroszkowiak/siteup/internal/models"
	"github.com/radoslawroszkowiak/siteup/internal/products"
	"github.com/radoslawroszkowiak/siteup/internal/setup"
	"github.com/radoslawroszkowiak/siteup/internal/workflow"
	"gorm.io/gorm"
)

// SiteUpdater performs one update run against a single site
type SiteUpdater struct {
	db        *gorm.DB
	site      *models.Site
	plan      *Plan
	logger    lager.Logger
	clock     clock.Clock
	bundleDir string
}

// NewSiteUpdater creates an updater for one site
func NewSiteUpdater(db *gorm.DB, site *models.Site, plan *Plan, logger lager.Logger, clk clock.Clock, bundleDir string) *SiteUpdater {
	return &SiteUpdater{
		db:        db,
		site:      site,
		plan:      plan,
		logger:    logger.Session("site", lager.Data{"subdomain": site.Subdomain}),
		clock:     clk,
		bundleDir: bundleDir,
	}
}

// Run executes the plan's operations and import steps inside one transaction,
// then records an audit row. The audit row is written even when the
// transaction rolled back.
func (u *SiteUpdater) Run(runID string) error {
	u.logger.Info("starting-update", lager.Data{
		"operations":   u.plan.Operations,
		"import_steps": u.plan.ImportSteps,
	})

	started := u.clock.Now()
	runErr := u.db.Transaction(func(tx *gorm.DB) error {
		for _, op := range u.plan.Operations {
			if err := u.timed(tx, op); err != nil {
				return err
			}
		}

		if len(u.plan.ImportSteps) > 0 {
			start := u.clock.Now()
			ctx := &setup.Context{DB: tx, Site: u.site}
			if err := setup.RunSteps(ctx, u.plan.ImportSteps); err != nil {
				u.logger.Error("import-steps-failed", err)
				return err
			}
			u.logger.Info("import-steps-complete", lager.Data{
				"steps":    u.plan.ImportSteps,
				"duration": u.clock.Since(start).String(),
			})
		}

		return nil
	})

	u.recordRun(runID, started, runErr)
	return runErr
}

// timed runs one operation, logging its elapsed time on success and the error
// on failure.
func (u *SiteUpdater) timed(tx *gorm.DB, op string) error {
	start := u.clock.Now()
	if err := u.runOperation(tx, op); err != nil {
		u.logger.Error(op+"-failed", err)
		return err
	}
	u.logger.Info(op+"-complete", lager.Data{"duration": u.clock.Since(start).String()})
	return nil
}

func (u *SiteUpdater) runOperation(tx *gorm.DB, op string) error {
	switch op {
	case OpReinstallProducts:
		return u.reinstallProducts(tx)
	case OpRebuildCatalog:
		return u.rebuildCatalog(tx)
	case OpRefreshJavascript:
		return u.refreshJavascript(tx)
	case OpRefreshCSS:
		return u.refreshCSS(tx)
	case OpUpdateWorkflow:
		return u.updateWorkflow(tx)
	default:
		return fmt.Errorf("unknown operation: %s", op)
	}
}

// reinstallProducts reinstalls the installed products selected by the plan's
// literal identifiers and regex.
func (u *SiteUpdater) reinstallProducts(tx *gorm.DB) error {
	installed, err := products.ListInstalled(tx, u.site.ID)
	if err != nil {
		return err
	}

	matched := products.Match(installed, u.plan.Products, u.plan.ProductsRegex)
	for _, id := range matched {
		if err := products.Reinstall(tx, u.site.ID, id); err != nil {
			return err
		}
	}

	u.logger.Info("reinstalled-products", lager.Data{"products": matched})
	return nil
}

func (u *SiteUpdater) rebuildCatalog(tx *gorm.DB) error {
	// Created here rather than at startup so runs that skip the catalog
	// tool work against registries without FTS5 support.
	if err := catalog.InitCatalog(tx); err != nil {
		return err
	}

	indexed, err := catalog.Rebuild(tx, u.site.ID)
	if err != nil {
		return err
	}
	u.logger.Info("catalog-rebuilt", lager.Data{"pages": indexed})
	return nil
}

func (u *SiteUpdater) refreshJavascript(tx *gorm.DB) error {
	merged, err := assets.RefreshJavascript(tx, u.site, u.bundleDir)
	if err != nil {
		return err
	}
	u.logger.Info("javascript-bundle-cooked", lager.Data{"resources": merged})
	return nil
}

func (u *SiteUpdater) refreshCSS(tx *gorm.DB) error {
	merged, err := assets.RefreshCSS(tx, u.site, u.bundleDir)
	if err != nil {
		return err
	}
	u.logger.Info("css-bundle-cooked", lager.Data{"resources": merged})
	return nil
}

func (u *SiteUpdater) updateWorkflow(tx *gorm.DB) error {
	updated, err := workflow.UpdateRoleMappings(tx, u.site.ID)
	if err != nil {
		return err
	}
	u.logger.Info("workflow-role-mappings-updated", lager.Data{"pages": updated})
	return nil
}

// recordRun writes the audit row for this site
func (u *SiteUpdater) recordRun(runID string, started time.Time, runErr error) {
	run := &models.UpdateRun{
		RunID:      runID,
		Subdomain:  u.site.Subdomain,
		Tools:      strings.Join(u.plan.Operations, ","),
		StartedAt:  started,
		FinishedAt: u.clock.Now(),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	if err := u.db.Create(run).Error; err != nil {
		u.logger.Error("failed-to-record-run", err)
	}
}
