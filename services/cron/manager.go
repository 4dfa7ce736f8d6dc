package cron

import (
	"log"
	"time"

	"github.com/feetrack/api/model"
	"github.com/feetrack/api/services/storage"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron   *cron.Cron
	db     *gorm.DB
	proofs storage.ProofStorage
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB, proofs storage.ProofStorage) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:   c,
		db:     db,
		proofs: proofs,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	// Register all jobs
	if err := m.registerJobs(); err != nil {
		return err
	}

	// Start the cron scheduler
	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// 1. Every hour: drop expired blacklist entries
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		m.logJobStart("cleanup_expired_tokens")
		m.CleanupExpiredTokens()
	})
	if err != nil {
		return err
	}

	// 2. Daily at 2 AM: sweep proof files with no database row
	_, err = m.cron.AddFunc("0 0 2 * * *", func() {
		m.logJobStart("cleanup_orphan_proofs")
		m.CleanupOrphanProofs()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart records a job run beginning
func (m *CronManager) logJobStart(jobName string) {
	entry := model.CronJobLog{
		JobName:   jobName,
		Status:    "started",
		StartedAt: time.Now(),
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] Failed to log job start for %s: %v", jobName, err)
	}
}

// logJobComplete records a successful job run
func (m *CronManager) logJobComplete(jobName, message string, startedAt time.Time) {
	now := time.Now()
	entry := model.CronJobLog{
		JobName:     jobName,
		Status:      "completed",
		StartedAt:   startedAt,
		CompletedAt: &now,
		Duration:    int(now.Sub(startedAt).Milliseconds()),
		Message:     message,
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] Failed to log job completion for %s: %v", jobName, err)
	}
}

// logJobError records a failed job run
func (m *CronManager) logJobError(jobName string, jobErr error, startedAt time.Time) {
	now := time.Now()
	entry := model.CronJobLog{
		JobName:     jobName,
		Status:      "failed",
		StartedAt:   startedAt,
		CompletedAt: &now,
		Duration:    int(now.Sub(startedAt).Milliseconds()),
		ErrorMsg:    jobErr.Error(),
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] Failed to log job error for %s: %v", jobName, err)
	}
	log.Printf("[CRON] %s failed: %v", jobName, jobErr)
}
