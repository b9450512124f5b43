// Package workflow manages per-site workflow definitions and keeps page
// permissions in sync with them.
package workflow

import (
	"encoding/json"
	"fmt"

	"github.com/radoslawroszkowiak/siteup/internal/models"
	"gorm.io/gorm"
)

// DefaultWorkflowName is the publication workflow every site carries
const DefaultWorkflowName = "simple-publication"

// defaultRoleMappings maps workflow states to the roles allowed to view
// content in that state.
var defaultRoleMappings = map[string][]string{
	"private":   {"owner", "admin", "editor"},
	"pending":   {"owner", "admin", "editor", "reviewer"},
	"published": {"anonymous", "owner", "admin", "editor", "reviewer"},
}

// EnsureDefaultWorkflow creates the default publication workflow for a site if
// it does not exist yet. Returns true when a workflow was created.
func EnsureDefaultWorkflow(db *gorm.DB, siteID uint) (bool, error) {
	var existing models.Workflow
	result := db.Where("site_id = ? AND name = ?", siteID, DefaultWorkflowName).First(&existing)
	if result.Error == nil {
		return false, nil
	}

	mappings, err := json.Marshal(defaultRoleMappings)
	if err != nil {
		return false, fmt.Errorf("failed to encode role mappings: %w", err)
	}

	wf := &models.Workflow{
		SiteID:       siteID,
		Name:         DefaultWorkflowName,
		Default:      true,
		RoleMappings: string(mappings),
	}
	if err := db.Create(wf).Error; err != nil {
		return false, fmt.Errorf("failed to create workflow: %w", err)
	}

	return true, nil
}

// GetDefaultWorkflow returns a site's default workflow
func GetDefaultWorkflow(db *gorm.DB, siteID uint) (*models.Workflow, error) {
	var wf models.Workflow
	result := db.Where("site_id = ? AND `default` = ?", siteID, true).First(&wf)
	if result.Error != nil {
		return nil, fmt.Errorf("no default workflow for site: %w", result.Error)
	}
	return &wf, nil
}

// UpdateRoleMappings re-applies the site's default workflow to every page:
// each page's stored permissions are recomputed from the roles mapped to its
// workflow state. Pages in a state the workflow does not know keep empty
// permissions. Returns the number of pages updated.
func UpdateRoleMappings(db *gorm.DB, siteID uint) (int, error) {
	wf, err := GetDefaultWorkflow(db, siteID)
	if err != nil {
		return 0, err
	}

	var mappings map[string][]string
	if err := json.Unmarshal([]byte(wf.RoleMappings), &mappings); err != nil {
		return 0, fmt.Errorf("failed to decode role mappings: %w", err)
	}

	var pages []models.Page
	if err := db.Where("site_id = ?", siteID).Find(&pages).Error; err != nil {
		return 0, fmt.Errorf("failed to load pages: %w", err)
	}

	updated := 0
	for _, page := range pages {
		roles := mappings[page.WorkflowState]
		if roles == nil {
			roles = []string{}
		}
		perms, err := json.Marshal(roles)
		if err != nil {
			return 0, fmt.Errorf("failed to encode permissions: %w", err)
		}
		if page.Permissions == string(perms) {
			continue
		}
		if err := db.Model(&models.Page{}).Where("id = ?", page.ID).
			Update("permissions", string(perms)).Error; err != nil {
			return 0, fmt.Errorf("failed to update page %d: %w", page.ID, err)
		}
		updated++
	}

	return updated, nil
}
