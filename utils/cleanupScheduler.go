package utils

import (
	"log"
	"time"

	"scms/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// retentionDays is how long soft-deleted rows are kept before being purged.
const retentionDays = 30

// InitializeCleanupScheduler sets up the soft-delete purge scheduler
func InitializeCleanupScheduler(db *gorm.DB) *cron.Cron {
	log.Println("[CLEANUP-SCHEDULER] Initializing cleanup scheduler...")

	c := cron.New()

	// Run daily at 3 AM to purge aged soft-deleted rows
	c.AddFunc("0 3 * * *", func() {
		log.Println("[CLEANUP-SCHEDULER] Running daily cleanup...")
		PurgeDeletedRows(db)
	})

	c.Start()
	log.Println("[CLEANUP-SCHEDULER] Cleanup scheduler started - runs daily at 3 AM")
	return c
}

// PurgeDeletedRows permanently removes students and courses that were
// soft-deleted more than retentionDays ago. Live rows are never touched.
func PurgeDeletedRows(db *gorm.DB) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	result := db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Course{})
	if result.Error != nil {
		log.Printf("[CLEANUP-SCHEDULER] Error purging courses: %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("[CLEANUP-SCHEDULER] Purged %d courses", result.RowsAffected)
	}

	result = db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Student{})
	if result.Error != nil {
		log.Printf("[CLEANUP-SCHEDULER] Error purging students: %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("[CLEANUP-SCHEDULER] Purged %d students", result.RowsAffected)
	}
}
