// Package export writes portable snapshots of a site's content.
package export

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/radoslawroszkowiak/siteup/internal/models"
	"gorm.io/gorm"
)

// SiteExporter writes site exports into one directory
type SiteExporter struct {
	ExportsDir string
}

// NewSiteExporter creates a new site exporter
func NewSiteExporter(exportsDir string) *SiteExporter {
	return &SiteExporter{
		ExportsDir: exportsDir,
	}
}

// siteExport is the on-disk export document
type siteExport struct {
	ExportedAt time.Time         `json:"exported_at"`
	Site       models.Site       `json:"site"`
	Pages      []models.Page     `json:"pages"`
	Products   []models.Product  `json:"products"`
	Workflows  []models.Workflow `json:"workflows"`
}

// CreateSiteExport writes a gzipped JSON export of one site's content and
// returns the export file path.
func (e *SiteExporter) CreateSiteExport(db *gorm.DB, site *models.Site) (string, error) {
	doc := siteExport{
		ExportedAt: time.Now(),
		Site:       *site,
	}

	if err := db.Where("site_id = ?", site.ID).Preload("Blocks").Find(&doc.Pages).Error; err != nil {
		return "", fmt.Errorf("failed to load pages: %w", err)
	}
	if err := db.Where("site_id = ?", site.ID).Find(&doc.Products).Error; err != nil {
		return "", fmt.Errorf("failed to load products: %w", err)
	}
	if err := db.Where("site_id = ?", site.ID).Find(&doc.Workflows).Error; err != nil {
		return "", fmt.Errorf("failed to load workflows: %w", err)
	}

	if err := os.MkdirAll(e.ExportsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create exports directory: %w", err)
	}

	filename := fmt.Sprintf("%s-%s.json.gz", site.Subdomain, doc.ExportedAt.Format("20060102-1504"))
	fullPath := filepath.Join(e.ExportsDir, filename)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	enc := json.NewEncoder(gz)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}
	if err := gz.Close(); err != nil {
		return "", fmt.Errorf("failed to finish export: %w", err)
	}

	return fullPath, nil
}
