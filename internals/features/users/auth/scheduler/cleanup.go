// file: internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authModel "orquestra_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler prunes expired blacklist entries and stale
// refresh tokens once a day.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			cleanupOnce(db)
			time.Sleep(24 * time.Hour)
		}
	}()
}

func cleanupOnce(db *gorm.DB) {
	ttlDays := 7
	if v, err := strconv.Atoi(os.Getenv("TOKEN_BLACKLIST_TTL_DAYS")); err == nil && v > 0 {
		ttlDays = v
	}
	cutoff := time.Now().AddDate(0, 0, -ttlDays)

	for {
		res := db.Unscoped().
			Where("expired_at < ?", cutoff).
			Limit(100).
			Delete(&authModel.TokenBlacklist{})
		if res.Error != nil {
			log.Println("[ERROR] blacklist cleanup failed:", res.Error)
			return
		}
		if res.RowsAffected == 0 {
			break
		}
		log.Printf("[INFO] blacklist cleanup removed %d tokens", res.RowsAffected)
	}

	res := db.Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now().AddDate(0, 0, -1)).
		Delete(&authModel.RefreshToken{})
	if res.Error != nil {
		log.Println("[ERROR] refresh token cleanup failed:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] refresh token cleanup removed %d rows", res.RowsAffected)
	}
}
