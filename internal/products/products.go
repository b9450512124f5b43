// SPDX-License-Identifier: MIT
package products

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/radoslawroszkowiak/siteup/internal/models"
	"gorm.io/gorm"
)

// ListProducts returns all products registered for a site
func ListProducts(db *gorm.DB, siteID uint) ([]models.Product, error) {
	var prods []models.Product
	result := db.Where("site_id = ?", siteID).Order("identifier ASC").Find(&prods)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list products: %w", result.Error)
	}
	return prods, nil
}

// ListInstalled returns the identifiers of a site's installed products
func ListInstalled(db *gorm.DB, siteID uint) ([]string, error) {
	var prods []models.Product
	result := db.Where("site_id = ? AND status = ?", siteID, models.ProductInstalled).
		Order("identifier ASC").Find(&prods)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list installed products: %w", result.Error)
	}

	ids := make([]string, 0, len(prods))
	for _, p := range prods {
		ids = append(ids, p.Identifier)
	}
	return ids, nil
}

// Match selects the installed identifiers named literally in chosen or whose
// identifier matches pattern from its beginning. The result is the union of
// both selections, unique and sorted. Identifiers that are not installed never
// match, even when named literally.
func Match(installed, chosen []string, pattern *regexp.Regexp) []string {
	installedSet := make(map[string]bool, len(installed))
	for _, id := range installed {
		installedSet[id] = true
	}

	matched := make(map[string]bool)
	for _, id := range chosen {
		if installedSet[id] {
			matched[id] = true
		}
	}

	if pattern != nil {
		for _, id := range installed {
			// Anchored at the start of the identifier
			if loc := pattern.FindStringIndex(id); loc != nil && loc[0] == 0 {
				matched[id] = true
			}
		}
	}

	ids := make([]string, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reinstall re-applies a product's install profile: live settings are reset to
// the profile defaults and the installed version is synced to the shipped one.
func Reinstall(db *gorm.DB, siteID uint, identifier string) error {
	var prod models.Product
	result := db.Where("site_id = ? AND identifier = ?", siteID, identifier).First(&prod)
	if result.Error != nil {
		return fmt.Errorf("product %s not found: %w", identifier, result.Error)
	}

	if prod.Status != models.ProductInstalled {
		return fmt.Errorf("product %s is not installed", identifier)
	}

	now := time.Now()
	prod.Settings = prod.Profile
	prod.InstalledVersion = prod.Version
	prod.ReinstalledAt = &now

	if err := db.Save(&prod).Error; err != nil {
		return fmt.Errorf("failed to reinstall product %s: %w", identifier, err)
	}

	return nil
}

// ApplyProfiles re-applies the install profile of every installed product on a
// site and returns how many were touched.
func ApplyProfiles(db *gorm.DB, siteID uint) (int, error) {
	ids, err := ListInstalled(db, siteID)
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		if err := Reinstall(db, siteID, id); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}
