package cron

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/feetrack/api/model"
	"github.com/feetrack/api/utils/auth"
)

// proofSweepGrace is how recent an upload must be for the orphan sweep to
// leave it alone. A submit saves the file before its transaction commits,
// so a just-written file can look orphaned for a moment.
const proofSweepGrace = 48 * time.Hour

// proofKeyTooRecent reports whether the key's embedded upload date falls
// inside the grace window. Keys are payment_proofs/<id>/<date>_<uuid><ext>;
// anything without a parseable date is treated as recent, the sweep only
// ever deletes what it can date.
func proofKeyTooRecent(key string, now time.Time) bool {
	base := path.Base(key)
	i := strings.IndexByte(base, '_')
	if i != len("20060102") {
		return true
	}
	uploaded, err := time.ParseInLocation("20060102", base[:i], time.UTC)
	if err != nil {
		return true
	}
	return now.Sub(uploaded) < proofSweepGrace
}

// CleanupExpiredTokens drops blacklist entries whose tokens have expired
// anyway; they can no longer authenticate and only slow the lookup.
func (m *CronManager) CleanupExpiredTokens() {
	started := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	jobName := "cleanup_expired_tokens"

	blacklist := auth.NewBlacklistService(m.db)
	if err := blacklist.CleanupExpiredTokens(ctx); err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to cleanup blacklist: %w", err), started)
		return
	}

	m.logJobComplete(jobName, "Expired blacklist entries removed", started)
}

// CleanupOrphanProofs deletes stored proof files that no PaymentProof row
// references. Orphans appear when a payment delete unlinks rows but a
// file removal failed mid-way; the sweep makes the cleanup eventual.
func (m *CronManager) CleanupOrphanProofs() {
	started := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	jobName := "cleanup_orphan_proofs"

	keys, err := m.proofs.List(ctx)
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to list stored proofs: %w", err), started)
		return
	}

	if len(keys) == 0 {
		m.logJobComplete(jobName, "No stored proofs to check", started)
		return
	}

	var known []string
	if err := m.db.WithContext(ctx).
		Model(&model.PaymentProof{}).
		Pluck("storage_key", &known).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query proof rows: %w", err), started)
		return
	}

	referenced := make(map[string]bool, len(known))
	for _, k := range known {
		referenced[k] = true
	}

	removed := 0
	failed := 0
	now := time.Now()
	for _, key := range keys {
		if referenced[key] || proofKeyTooRecent(key, now) {
			continue
		}
		if err := m.proofs.Remove(ctx, key); err != nil {
			failed++
			continue
		}
		removed++
	}

	m.logJobComplete(jobName, fmt.Sprintf("Removed %d orphan proof file(s), %d failed", removed, failed), started)
}
