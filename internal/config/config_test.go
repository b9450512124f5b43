package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	// Test getting a default value
	value := GetString("database.type")
	if value != "sqlite" {
		t.Errorf("Expected default database.type to be sqlite, got %s", value)
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("logging.dir", "/tmp/logs")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("logging.dir")
	if value != "/tmp/logs" {
		t.Errorf("Expected logging.dir to be /tmp/logs, got %s", value)
	}
}

func TestGetAllIncludesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	all := GetAll()
	if len(all) == 0 {
		t.Fatal("Expected defaults in GetAll, got none")
	}
}
