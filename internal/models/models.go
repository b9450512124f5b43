package models

import (
	"time"

	"gorm.io/gorm"
)

// Site represents one logical content site hosted in this application instance
type Site struct {
	ID             uint   `gorm:"primaryKey"`
	Subdomain      string `gorm:"uniqueIndex"`
	SiteDir        string `gorm:"not null"` // Directory path for this site
	SiteTitle      string
	PrimaryColor   string `gorm:"default:#2563eb"`
	SecondaryColor string `gorm:"default:#64748b"`
	FontPair       string `gorm:"default:system"`
	PaletteName    string `gorm:"default:slate"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	// Relationships
	Products  []Product  `gorm:"foreignKey:SiteID"`
	Pages     []Page     `gorm:"foreignKey:SiteID"`
	Resources []Resource `gorm:"foreignKey:SiteID"`
	Workflows []Workflow `gorm:"foreignKey:SiteID"`
}

// Product statuses
const (
	ProductInstalled   = "installed"
	ProductUninstalled = "uninstalled"
)

// Product represents an installable add-on registered for a site
type Product struct {
	ID               uint   `gorm:"primaryKey"`
	SiteID           uint   `gorm:"not null;index"`
	Identifier       string `gorm:"not null"` // e.g. "siteup.gallery"
	Status           string `gorm:"default:installed"`
	Version          string // version shipped with the product profile
	InstalledVersion string // version the site currently runs
	Profile          string `gorm:"type:text"` // JSON default settings applied on (re)install
	Settings         string `gorm:"type:text"` // JSON live settings
	ReinstalledAt    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	// Relationships
	Site Site `gorm:"foreignKey:SiteID"`
}

// Page represents a page on a site
type Page struct {
	ID            uint   `gorm:"primaryKey"`
	SiteID        uint   `gorm:"not null"`
	Slug          string `gorm:"not null"` // URL slug
	Title         string `gorm:"not null"`
	Published     bool   `gorm:"default:false"`
	WorkflowState string `gorm:"default:private"`
	Permissions   string `gorm:"type:text"` // JSON list of roles allowed to view
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	// Relationships
	Site   Site    `gorm:"foreignKey:SiteID"`
	Blocks []Block `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE"`
}

// Block represents a content block on a page
type Block struct {
	ID        uint   `gorm:"primaryKey"`
	PageID    uint   `gorm:"not null"`
	Type      string `gorm:"not null"` // "hero", "text", "image"
	Order     int    `gorm:"not null"` // Display order on page
	Data      string `gorm:"type:text"` // JSON content for the block
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	Page Page `gorm:"foreignKey:PageID"`
}

// Resource represents one static file registered into a site's merged bundle
type Resource struct {
	ID        uint   `gorm:"primaryKey"`
	SiteID    uint   `gorm:"not null;index"`
	Kind      string `gorm:"not null"` // "javascript" or "css"
	Path      string `gorm:"not null"` // relative to the site directory
	Position  int    `gorm:"not null"` // concatenation order within the bundle
	// Pointer so a disabled resource survives insertion; gorm skips
	// zero-value fields that carry a default tag.
	Enabled   *bool  `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	Site Site `gorm:"foreignKey:SiteID"`
}

// Workflow represents a named workflow definition for a site. RoleMappings is
// a JSON object mapping a workflow state to the roles allowed to view content
// in that state.
type Workflow struct {
	ID           uint   `gorm:"primaryKey"`
	SiteID       uint   `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	Default      bool   `gorm:"default:false"`
	RoleMappings string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	// Relationships
	Site Site `gorm:"foreignKey:SiteID"`
}

// UpdateRun is the audit record written for each site touched by an update run
type UpdateRun struct {
	ID         uint   `gorm:"primaryKey"`
	RunID      string `gorm:"not null;index"` // shared by every site in one invocation
	Subdomain  string `gorm:"not null"`
	Tools      string // comma-separated operations that ran
	StartedAt  time.Time
	FinishedAt time.Time
	Error      string
	CreatedAt  time.Time
}

// TableName overrides for consistent naming
func (Site) TableName() string {
	return "sites"
}

func (Product) TableName() string {
	return "products"
}

func (Page) TableName() string {
	return "pages"
}

func (Block) TableName() string {
	return "blocks"
}

func (Resource) TableName() string {
	return "resources"
}

func (Workflow) TableName() string {
	return "workflows"
}

func (UpdateRun) TableName() string {
	return "update_runs"
}
