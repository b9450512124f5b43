package sites

import (
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

	db.AutoMigrate(&models.Site{}, &models.Page{})
	return db
}

func TestCreateSite(t *testing.T) {
	db := setupTestDB(t)

	site, err := CreateSite(db, "alpha", "Alpha Site", "/tmp/sites")
	if err != nil {
		t.Fatalf("CreateSite failed: %v", err)
	}

	if site.Subdomain != "alpha" {
		t.Errorf("Expected subdomain alpha, got %s", site.Subdomain)
	}

	// Homepage is auto-created
	var homepage models.Page
	result := db.Where("site_id = ? AND slug = ?", site.ID, "/").First(&homepage)
	if result.Error != nil {
		t.Fatalf("Expected auto-created homepage: %v", result.Error)
	}
}

func TestCreateSiteDuplicateSubdomain(t *testing.T) {
	db := setupTestDB(t)

	CreateSite(db, "dup", "", "/tmp/sites")
	_, err := CreateSite(db, "dup", "", "/tmp/sites")
	if err == nil {
		t.Fatal("Expected error for duplicate subdomain")
	}
}

func TestGetSiteBySubdomain(t *testing.T) {
	db := setupTestDB(t)

	CreateSite(db, "findme", "", "/tmp/sites")

	site, err := GetSiteBySubdomain(db, "findme")
	if err != nil {
		t.Fatalf("GetSiteBySubdomain failed: %v", err)
	}

	if site.Subdomain != "findme" {
		t.Errorf("Expected subdomain findme, got %s", site.Subdomain)
	}

	if _, err := GetSiteBySubdomain(db, "missing"); err == nil {
		t.Error("Expected error for unknown subdomain")
	}
}

func TestListSitesOrdered(t *testing.T) {
	db := setupTestDB(t)

	CreateSite(db, "zulu", "", "/tmp/sites")
	CreateSite(db, "alpha", "", "/tmp/sites")

	sites, err := ListSites(db)
	if err != nil {
		t.Fatalf("ListSites failed: %v", err)
	}

	if len(sites) != 2 {
		t.Fatalf("Expected 2 sites, got %d", len(sites))
	}

	if sites[0].Subdomain != "alpha" || sites[1].Subdomain != "zulu" {
		t.Errorf("Expected sites ordered by subdomain, got %s, %s",
			sites[0].Subdomain, sites[1].Subdomain)
	}
}

func TestDeleteSite(t *testing.T) {
	db := setupTestDB(t)

	site, _ := CreateSite(db, "gone", "", "/tmp/sites")

	if err := DeleteSite(db, site.ID); err != nil {
		t.Fatalf("DeleteSite failed: %v", err)
	}

	if _, err := GetSiteBySubdomain(db, "gone"); err == nil {
		t.Error("Expected deleted site to be gone")
	}

	if err := DeleteSite(db, 9999); err == nil {
		t.Error("Expected error deleting unknown site")
	}
}
