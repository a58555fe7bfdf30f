package session

import (
	"database/sql"
	"testing"
)

func TestMigrations(t *testing.T) {
	// Create temporary directory for test
	tempDir := t.TempDir()

	// Initialize store
	store := NewSQLiteStore(tempDir)
	err := store.Initialize()
	if err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	// Test getting database version
	version, err := store.GetDatabaseVersion()
	if err != nil {
		t.Fatalf("Failed to get database version: %v", err)
	}

	if version < 1 {
		t.Errorf("Expected database version >= 1, got %d", version)
	}

	// Test running migrations again (should be idempotent)
	err = store.RunMigrations()
	if err != nil {
		t.Fatalf("Failed to run migrations again: %v", err)
	}

	// Version should be the same or higher
	newVersion, err := store.GetDatabaseVersion()
	if err != nil {
		t.Fatalf("Failed to get database version after re-running migrations: %v", err)
	}

	if newVersion < version {
		t.Errorf("Database version went backwards: %d -> %d", version, newVersion)
	}
}

func TestMigrationManager(t *testing.T) {
	// Create in-memory database for testing
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	defer db.Close()

	// Create migration manager
	migrationManager := NewMigrationManager(db)
	err = migrationManager.Initialize()
	if err != nil {
		t.Fatalf("Failed to initialize migration manager: %v", err)
	}

	// Test getting version before any migrations
	version, err := migrationManager.Version()
	if err != nil {
		t.Fatalf("Failed to get initial version: %v", err)
	}

	if version != 0 {
		t.Errorf("Expected initial version 0, got %d", version)
	}

	// Run migrations
	err = migrationManager.Up()
	if err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Check that migrations created the credentials table
	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='credentials'").Scan(&tableName)
	if err != nil {
		t.Fatalf("Credentials table was not created: %v", err)
	}

	// Check version after migrations
	version, err = migrationManager.Version()
	if err != nil {
		t.Fatalf("Failed to get version after migrations: %v", err)
	}

	if version < 1 {
		t.Errorf("Expected version >= 1 after migrations, got %d", version)
	}

	// Test rollback
	err = migrationManager.Down()
	if err != nil {
		t.Fatalf("Failed to rollback migration: %v", err)
	}

	// Version should be decremented
	newVersion, err := migrationManager.Version()
	if err != nil {
		t.Fatalf("Failed to get version after rollback: %v", err)
	}

	if newVersion >= version {
		t.Errorf("Expected version to decrease after rollback: %d -> %d", version, newVersion)
	}
}
