package scheduler

import (
	"context"
	"testing"
	"time"

	"stream-portal/session"
)

func TestSessionCleanupJob(t *testing.T) {
	tempDir := t.TempDir()

	store := session.NewSQLiteStore(tempDir)
	if err := store.Initialize(); err != nil {
		t.Fatalf("Failed to initialize session store: %v", err)
	}
	defer store.Close()

	if err := store.Set(session.KeyAuthToken, "tok-1"); err != nil {
		t.Fatalf("Failed to seed credential: %v", err)
	}

	job := NewSessionCleanupJob(store, 30*24*time.Hour)

	if job.Name() != "session_cleanup" {
		t.Errorf("Name = %q, want session_cleanup", job.Name())
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Job run failed: %v", err)
	}

	// A fresh credential is not stale and must survive
	if _, ok, _ := store.Get(session.KeyAuthToken); !ok {
		t.Error("Fresh credential was purged")
	}
}

func TestSessionCleanupJobDefaultMaxAge(t *testing.T) {
	job := NewSessionCleanupJob(nil, 0)
	if job.maxAge != defaultSessionMaxAge {
		t.Errorf("maxAge = %v, want %v", job.maxAge, defaultSessionMaxAge)
	}
}
