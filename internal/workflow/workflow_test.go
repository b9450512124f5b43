package workflow

import (
	"encoding/json"
	"testing"

	"github.com/radoslawroszkowiak/siteup/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	db.AutoMigrate(&models.Site{}, &models.Page{}, &models.Workflow{})
	return db
}

func TestEnsureDefaultWorkflow(t *testing.T) {
	db := setupTestDB(t)

	site := &models.Site{Subdomain: "camp"}
	db.Create(site)

	created, err := EnsureDefaultWorkflow(db, site.ID)
	if err != nil {
		t.Fatalf("EnsureDefaultWorkflow failed: %v", err)
	}
	if !created {
		t.Error("Expected workflow to be created")
	}

	// Idempotent on the second run
	created, err = EnsureDefaultWorkflow(db, site.ID)
	if err != nil {
		t.Fatalf("EnsureDefaultWorkflow failed: %v", err)
	}
	if created {
		t.Error("Expected second run to be a no-op")
	}

	var count int64
	db.Model(&models.Workflow{}).Where("site_id = ?", site.ID).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 workflow, got %d", count)
	}
}

func TestUpdateRoleMappings(t *testing.T) {
	db := setupTestDB(t)

	site := &models.Site{Subdomain: "camp"}
	db.Create(site)

	if _, err := EnsureDefaultWorkflow(db, site.ID); err != nil {
		t.Fatalf("EnsureDefaultWorkflow failed: %v", err)
	}

	pub := models.Page{SiteID: site.ID, Slug: "/", Title: "Home", WorkflowState: "published"}
	priv := models.Page{SiteID: site.ID, Slug: "/drafts", Title: "Drafts", WorkflowState: "private"}
	odd := models.Page{SiteID: site.ID, Slug: "/odd", Title: "Odd", WorkflowState: "limbo"}
	db.Create(&pub)
	db.Create(&priv)
	db.Create(&odd)

	updated, err := UpdateRoleMappings(db, site.ID)
	if err != nil {
		t.Fatalf("UpdateRoleMappings failed: %v", err)
	}
	if updated != 3 {
		t.Errorf("Expected 3 pages updated, got %d", updated)
	}

	var gotPub models.Page
	if err := db.First(&gotPub, pub.ID).Error; err != nil {
		t.Fatalf("Failed to load published page: %v", err)
	}
	var roles []string
	if err := json.Unmarshal([]byte(gotPub.Permissions), &roles); err != nil {
		t.Fatalf("Failed to decode permissions: %v", err)
	}
	if len(roles) == 0 || roles[0] != "anonymous" {
		t.Errorf("Expected anonymous access for published page, got %v", roles)
	}

	var gotPriv models.Page
	if err := db.First(&gotPriv, priv.ID).Error; err != nil {
		t.Fatalf("Failed to load private page: %v", err)
	}
	if gotPriv.Permissions == "" || gotPriv.Permissions == "[]" {
		t.Errorf("Expected private page roles, got %q", gotPriv.Permissions)
	}

	// Unknown state gets empty permissions
	var gotOdd models.Page
	if err := db.First(&gotOdd, odd.ID).Error; err != nil {
		t.Fatalf("Failed to load page: %v", err)
	}
	if gotOdd.Permissions != "[]" {
		t.Errorf("Expected empty permissions for unknown state, got %q", gotOdd.Permissions)
	}

	// Second run changes nothing
	updated, err = UpdateRoleMappings(db, site.ID)
	if err != nil {
		t.Fatalf("UpdateRoleMappings failed: %v", err)
	}
	if updated != 0 {
		t.Errorf("Expected no updates on second run, got %d", updated)
	}
}

func TestUpdateRoleMappingsNoWorkflow(t *testing.T) {
	db := setupTestDB(t)

	site := &models.Site{Subdomain: "camp"}
	db.Create(site)

	if _, err := UpdateRoleMappings(db, site.ID); err == nil {
		t.Fatal("Expected error when site has no default workflow")
	}
}
