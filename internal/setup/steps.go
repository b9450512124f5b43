package setup

import (
	"fmt"

	"github.com/radoslawroszkowiak/siteup/internal/models"
	"github.com/radoslawroszkowiak/siteup/internal/products"
	"github.com/radoslawroszkowiak/siteup/internal/themes"
	"github.com/radoslawroszkowiak/siteup/internal/workflow"
)

func init() {
	Register(Step{
		ID:          "default-pages",
		Description: "Ensure the site has a homepage",
		Run:         ensureDefaultPages,
	})
	Register(Step{
		ID:          "theme-defaults",
		Description: "Fill blank site colors from the site's palette",
		Run:         applyThemeDefaults,
	})
	Register(Step{
		ID:          "product-profiles",
		Description: "Re-apply the install profile of every installed product",
		Run:         applyProductProfiles,
	})
	Register(Step{
		ID:          "workflow-defaults",
		Description: "Ensure the default publication workflow exists",
		Run:         ensureDefaultWorkflow,
	})
}

func ensureDefaultPages(ctx *Context) error {
	var existing models.Page
	result := ctx.DB.Where("site_id = ? AND slug = ?", ctx.Site.ID, "/").First(&existing)
	if result.Error == nil {
		return nil
	}

	homepage := &models.Page{
		SiteID:    ctx.Site.ID,
		Slug:      "/",
		Title:     ctx.Site.Subdomain,
		Published: false,
	}
	if err := ctx.DB.Create(homepage).Error; err != nil {
		return fmt.Errorf("failed to create homepage: %w", err)
	}
	return nil
}

func applyThemeDefaults(ctx *Context) error {
	palette := themes.GetPalette(ctx.Site.PaletteName)

	changed := false
	if ctx.Site.PrimaryColor == "" {
		ctx.Site.PrimaryColor = palette.Primary
		changed = true
	}
	if ctx.Site.SecondaryColor == "" {
		ctx.Site.SecondaryColor = palette.Secondary
		changed = true
	}
	if !changed {
		return nil
	}

	if err := ctx.DB.Save(ctx.Site).Error; err != nil {
		return fmt.Errorf("failed to save theme defaults: %w", err)
	}
	return nil
}

func applyProductProfiles(ctx *Context) error {
	_, err := products.ApplyProfiles(ctx.DB, ctx.Site.ID)
	return err
}

func ensureDefaultWorkflow(ctx *Context) error {
	_, err := workflow.EnsureDefaultWorkflow(ctx.DB, ctx.Site.ID)
	return err
}
