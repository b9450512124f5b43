package sites

import (
	"fmt"
	"path/filepath"

	"github.com/radoslawroszkowiak/siteup/internal/models"
	"gorm.io/gorm"
)

// CreateSite registers a new site with the given subdomain
func CreateSite(db *gorm.DB, subdomain, title, sitesDir string) (*models.Site, error) {
	// Check if subdomain already exists
	var existing models.Site
	result := db.Where("subdomain = ?", subdomain).First(&existing)
	if result.Error == nil {
		return nil, fmt.Errorf("subdomain %s already exists", subdomain)
	}

	siteDir := filepath.Join(sitesDir, fmt.Sprintf("site-%s", subdomain))

	site := &models.Site{
		Subdomain: subdomain,
		SiteTitle: title,
		SiteDir:   siteDir,
	}

	if err := db.Create(site).Error; err != nil {
		return nil, fmt.Errorf("failed to create site: %w", err)
	}

	// Auto-create homepage for new site
	homepage := &models.Page{
		SiteID:    site.ID,
		Slug:      "/",
		Title:     subdomain,
		Published: false,
	}
	if err := db.Create(homepage).Error; err != nil {
		return nil, fmt.Errorf("failed to create homepage: %w", err)
	}

	return site, nil
}

// GetSiteBySubdomain retrieves a site by subdomain
func GetSiteBySubdomain(db *gorm.DB, subdomain string) (*models.Site, error) {
	var site models.Site
	result := db.Where("subdomain = ?", subdomain).First(&site)
	if result.Error != nil {
		return nil, fmt.Errorf("site not found: %w", result.Error)
	}
	return &site, nil
}

// ListSites returns all registered sites ordered by subdomain
func ListSites(db *gorm.DB) ([]models.Site, error) {
	var sites []models.Site
	result := db.Order("subdomain ASC").Find(&sites)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list sites: %w", result.Error)
	}
	return sites, nil
}

// DeleteSite soft-deletes a site
func DeleteSite(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Site{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete site: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("site not found")
	}
	return nil
}
