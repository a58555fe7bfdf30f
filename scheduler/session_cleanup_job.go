package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"stream-portal/session"
)

const defaultSessionMaxAge = 30 * 24 * time.Hour

// SessionCleanupJob purges credential entries that have not been written
// for longer than maxAge, so abandoned logins do not accumulate in the
// session store.
type SessionCleanupJob struct {
	store  *session.SQLiteStore
	maxAge time.Duration
}

// NewSessionCleanupJob creates a cleanup job over store. A non-positive
// maxAge falls back to 30 days.
func NewSessionCleanupJob(store *session.SQLiteStore, maxAge time.Duration) *SessionCleanupJob {
	if maxAge <= 0 {
		maxAge = defaultSessionMaxAge
	}
	return &SessionCleanupJob{
		store:  store,
		maxAge: maxAge,
	}
}

// Name returns the name of the job
func (j *SessionCleanupJob) Name() string {
	return "session_cleanup"
}

// Run executes the job
func (j *SessionCleanupJob) Run(ctx context.Context) error {
	purged, err := j.store.PurgeOlderThan(j.maxAge)
	if err != nil {
		return fmt.Errorf("failed to purge stale sessions: %w", err)
	}

	if purged > 0 {
		log.Printf("Purged %d stale session entries", purged)
	}
	return nil
}
