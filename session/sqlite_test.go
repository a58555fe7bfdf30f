package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteStore(t *testing.T) {
	// Create temporary directory for test
	tempDir := t.TempDir()

	// Initialize store
	store := NewSQLiteStore(tempDir)
	err := store.Initialize()
	if err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	// Missing key
	_, ok, err := store.Get(KeyAuthToken)
	if err != nil {
		t.Fatalf("Failed to read missing key: %v", err)
	}
	if ok {
		t.Fatal("Expected missing key to report not found")
	}

	// Set and get
	if err := store.Set(KeyAuthToken, "tok-1"); err != nil {
		t.Fatalf("Failed to set credential: %v", err)
	}

	value, ok, err := store.Get(KeyAuthToken)
	if err != nil {
		t.Fatalf("Failed to get credential: %v", err)
	}
	if !ok || value != "tok-1" {
		t.Fatalf("Expected tok-1, got (%q, %v)", value, ok)
	}

	// Overwrite
	if err := store.Set(KeyAuthToken, "tok-2"); err != nil {
		t.Fatalf("Failed to overwrite credential: %v", err)
	}
	value, _, _ = store.Get(KeyAuthToken)
	if value != "tok-2" {
		t.Fatalf("Expected tok-2 after overwrite, got %q", value)
	}

	// Delete
	if err := store.Delete(KeyAuthToken); err != nil {
		t.Fatalf("Failed to delete credential: %v", err)
	}
	_, ok, _ = store.Get(KeyAuthToken)
	if ok {
		t.Fatal("Expected credential to be gone after delete")
	}

	// Deleting a missing key is not an error
	if err := store.Delete(KeyAuthToken); err != nil {
		t.Fatalf("Deleting missing key failed: %v", err)
	}
}

func TestSQLiteStorePurgeOlderThan(t *testing.T) {
	tempDir := t.TempDir()

	store := NewSQLiteStore(tempDir)
	if err := store.Initialize(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	if err := store.Set(KeyAuthToken, "tok-1"); err != nil {
		t.Fatalf("Failed to set credential: %v", err)
	}

	// Fresh rows survive a one-hour cutoff
	purged, err := store.PurgeOlderThan(time.Hour)
	if err != nil {
		t.Fatalf("Failed to purge: %v", err)
	}
	if purged != 0 {
		t.Fatalf("Expected 0 purged, got %d", purged)
	}

	// Backdate the row past the cutoff; the next purge must remove it
	_, err = store.db.Exec(`UPDATE credentials SET updated_at = datetime('now', '-2 hours') WHERE key = ?`, KeyAuthToken)
	if err != nil {
		t.Fatalf("Failed to backdate credential: %v", err)
	}

	purged, err = store.PurgeOlderThan(time.Hour)
	if err != nil {
		t.Fatalf("Failed to purge: %v", err)
	}
	if purged != 1 {
		t.Fatalf("Expected 1 purged, got %d", purged)
	}

	_, ok, _ := store.Get(KeyAuthToken)
	if ok {
		t.Fatal("Expected credential to be purged")
	}

	// A negative age puts the cutoff in the future and ages out fresh rows
	if err := store.Set(KeyTokenType, "Bearer"); err != nil {
		t.Fatalf("Failed to set credential: %v", err)
	}
	purged, err = store.PurgeOlderThan(-time.Hour)
	if err != nil {
		t.Fatalf("Failed to purge: %v", err)
	}
	if purged != 1 {
		t.Fatalf("Expected 1 purged with future cutoff, got %d", purged)
	}
}

func TestSQLiteStoreInit(t *testing.T) {
	tempDir := t.TempDir()

	store := NewSQLiteStore(tempDir)
	err := store.Initialize()
	if err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	// Check if database file was created
	dbPath := filepath.Join(tempDir, "stream_portal.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("Database file was not created")
	}
}
