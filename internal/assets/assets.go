// SPDX-License-Identifier: MIT

// Package assets cooks a site's registered javascript and css resources into
// single merged bundle files under the site directory.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/radoslawroszkowiak/siteup/internal/models"
	"github.com/radoslawroszkowiak/siteup/internal/themes"
	"gorm.io/gorm"
)

// Resource kinds
const (
	KindJavascript = "javascript"
	KindCSS        = "css"
)

// Bundle file names, written into the bundle dir under the site directory
const (
	JavascriptBundle = "merged.js"
	CSSBundle        = "merged.css"
)

// ListResources returns a site's enabled resources of one kind in bundle order
func ListResources(db *gorm.DB, siteID uint, kind string) ([]models.Resource, error) {
	var resources []models.Resource
	result := db.Where("site_id = ? AND kind = ? AND enabled = ?", siteID, kind, true).
		Order("position ASC").Find(&resources)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list %s resources: %w", kind, result.Error)
	}
	return resources, nil
}

// RefreshJavascript re-cooks the site's merged javascript bundle and returns
// the number of resources merged.
func RefreshJavascript(db *gorm.DB, site *models.Site, bundleDir string) (int, error) {
	resources, err := ListResources(db, site.ID, KindJavascript)
	if err != nil {
		return 0, err
	}

	var b strings.Builder
	for _, res := range resources {
		content, err := readResource(site.SiteDir, res.Path)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(&b, "/* == %s == */\n", res.Path)
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(";\n")
	}

	if err := writeBundle(site.SiteDir, bundleDir, JavascriptBundle, b.String()); err != nil {
		return 0, err
	}
	return len(resources), nil
}

// RefreshCSS re-cooks the site's merged stylesheet. The generated theme
// stylesheet heads the bundle, followed by the registered css resources.
func RefreshCSS(db *gorm.DB, site *models.Site, bundleDir string) (int, error) {
	resources, err := ListResources(db, site.ID, KindCSS)
	if err != nil {
		return 0, err
	}

	colors := themes.ColorsForSite(site.PrimaryColor, site.SecondaryColor)

	var b strings.Builder
	b.WriteString("/* == theme == */\n")
	b.WriteString(themes.GenerateCSS(colors, site.FontPair))

	for _, res := range resources {
		content, err := readResource(site.SiteDir, res.Path)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(&b, "\n/* == %s == */\n", res.Path)
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
	}

	if err := writeBundle(site.SiteDir, bundleDir, CSSBundle, b.String()); err != nil {
		return 0, err
	}
	return len(resources), nil
}

// readResource reads one registered resource file relative to the site dir
func readResource(siteDir, path string) (string, error) {
	content, err := os.ReadFile(filepath.Join(siteDir, path))
	if err != nil {
		return "", fmt.Errorf("failed to read resource %s: %w", path, err)
	}
	return string(content), nil
}

// writeBundle writes a cooked bundle under the site's bundle directory
func writeBundle(siteDir, bundleDir, name, content string) error {
	dir := filepath.Join(siteDir, bundleDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create bundle directory: %w", err)
	}

	fullPath := filepath.Join(dir, name)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write bundle %s: %w", name, err)
	}

	return nil
}
