// SPDX-License-Identifier: MIT
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/radoslawroszkowiak/siteup/internal/models"
	"gorm.io/gorm"
)

// InitCatalog creates the FTS5 virtual table backing the content catalog.
// Note: the default tokenizer is used instead of 'porter unicode61' for better
// compatibility with SQLite builds that don't have the porter extension.
func InitCatalog(db *gorm.DB) error {
	err := db.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS catalog USING fts5(
			page_id UNINDEXED,
			site_id UNINDEXED,
			title,
			content
		)
	`).Error
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}

	return nil
}

// IndexPage adds or updates a page in the catalog
func IndexPage(db *gorm.DB, page *models.Page) error {
	// Get all blocks for the page
	var blocks []models.Block
	if err := db.Where("page_id = ?", page.ID).Order("`order` ASC").Find(&blocks).Error; err != nil {
		return fmt.Errorf("failed to load blocks: %w", err)
	}

	// Extract text content from all blocks
	var contentParts []string
	for _, block := range blocks {
		content := extractTextFromBlock(block)
		if content != "" {
			contentParts = append(contentParts, content)
		}
	}
	fullContent := strings.Join(contentParts, " ")

	// Delete existing entry if any
	if err := db.Exec(`DELETE FROM catalog WHERE page_id = ?`, page.ID).Error; err != nil {
		return fmt.Errorf("failed to delete old catalog entry: %w", err)
	}

	// Only index published pages
	if !page.Published {
		return nil
	}

	err := db.Exec(`
		INSERT INTO catalog (page_id, site_id, title, content)
		VALUES (?, ?, ?, ?)
	`, page.ID, page.SiteID, page.Title, fullContent).Error
	if err != nil {
		return fmt.Errorf("failed to insert catalog entry: %w", err)
	}

	return nil
}

// Result represents a single catalog search result
type Result struct {
	PageID  uint    `json:"page_id"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	URL     string  `json:"url"`
	Rank    float64 `json:"rank"`
}

// Search performs a full-text search within a site
func Search(db *gorm.DB, siteID uint, query string) ([]Result, error) {
	if query == "" {
		return []Result{}, nil
	}

	rows, err := db.Raw(`
		SELECT
			c.page_id,
			p.title,
			p.slug,
			snippet(catalog, 3, '<mark>', '</mark>', '...', 50) as snippet,
			rank
		FROM catalog c
		INNER JOIN pages p ON c.page_id = p.id
		WHERE catalog MATCH ? AND c.site_id = ?
		ORDER BY rank
		LIMIT 50
	`, query, siteID).Rows()
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var result Result
		var slug string
		if err := rows.Scan(&result.PageID, &result.Title, &slug, &result.Snippet, &result.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		result.URL = slug
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}

	return results, nil
}

// Rebuild clears a site's catalog entries and re-indexes every published page.
// It returns the number of pages indexed.
func Rebuild(db *gorm.DB, siteID uint) (int, error) {
	// Remove all existing entries for this site
	if err := db.Exec(`DELETE FROM catalog WHERE site_id = ?`, siteID).Error; err != nil {
		return 0, fmt.Errorf("failed to clear site catalog: %w", err)
	}

	// Get all published pages for the site
	var pages []models.Page
	if err := db.Where("site_id = ? AND published = ?", siteID, true).Find(&pages).Error; err != nil {
		return 0, fmt.Errorf("failed to load pages: %w", err)
	}

	// Index each page
	for _, page := range pages {
		if err := IndexPage(db, &page); err != nil {
			return 0, fmt.Errorf("failed to index page %d: %w", page.ID, err)
		}
	}

	return len(pages), nil
}

// extractTextFromBlock extracts searchable text from a block's JSON data
func extractTextFromBlock(block models.Block) string {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(block.Data), &data); err != nil {
		return ""
	}

	var parts []string

	// Extract based on block type
	switch block.Type {
	case "text":
		if content, ok := data["content"].(string); ok {
			// Strip HTML tags for indexing
			parts = append(parts, stripHTML(content))
		}
	case "hero":
		if title, ok := data["title"].(string); ok {
			parts = append(parts, title)
		}
		if subtitle, ok := data["subtitle"].(string); ok {
			parts = append(parts, subtitle)
		}
	case "image":
		if caption, ok := data["caption"].(string); ok {
			parts = append(parts, caption)
		}
		if alt, ok := data["alt"].(string); ok {
			parts = append(parts, alt)
		}
	}

	return strings.Join(parts, " ")
}

// stripHTML removes HTML tags from a string (simple implementation)
func stripHTML(s string) string {
	// Simple tag removal - not perfect but good enough for indexing
	var result strings.Builder
	inTag := false
	for _, r := range s {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	return result.String()
}
