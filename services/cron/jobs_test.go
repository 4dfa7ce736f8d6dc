package cron

import (
	"testing"
	"time"

	"github.com/feetrack/api/services/storage"
	"github.com/stretchr/testify/assert"
)

func TestProofKeyTooRecent(t *testing.T) {
	now := time.Date(2026, 8, 28, 2, 0, 0, 0, time.UTC)

	t.Run("fresh uploads are inside the grace window", func(t *testing.T) {
		assert.True(t, proofKeyTooRecent("payment_proofs/7/20260828_abc.png", now))
		assert.True(t, proofKeyTooRecent("payment_proofs/7/20260827_abc.png", now))
	})

	t.Run("old uploads are sweepable", func(t *testing.T) {
		assert.False(t, proofKeyTooRecent("payment_proofs/7/20260820_abc.png", now))
		assert.False(t, proofKeyTooRecent("payment_proofs/7/20250101_abc.jpg", now))
	})

	t.Run("undatable keys are never swept", func(t *testing.T) {
		assert.True(t, proofKeyTooRecent("payment_proofs/7/receipt.png", now))
		assert.True(t, proofKeyTooRecent("payment_proofs/7/notadate1_abc.png", now))
		assert.True(t, proofKeyTooRecent("stray-file", now))
	})

	t.Run("generated keys start inside the grace window", func(t *testing.T) {
		key := storage.GenerateProofKey(7, "receipt.png")
		assert.True(t, proofKeyTooRecent(key, time.Now()))
	})
}
