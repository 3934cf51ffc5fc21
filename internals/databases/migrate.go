// file: internals/databases/migrate.go
package database

import (
	"log"

	workModel "orquestra_backend/internals/features/acervo/work/model"
	attendanceModel "orquestra_backend/internals/features/agenda/attendance/model"
	eventModel "orquestra_backend/internals/features/agenda/event/model"
	statsModel "orquestra_backend/internals/features/gamification/stats/model"
	noticeModel "orquestra_backend/internals/features/mural/notice/model"
	authModel "orquestra_backend/internals/features/users/auth/model"
	profileModel "orquestra_backend/internals/features/users/profile/model"
	userModel "orquestra_backend/internals/features/users/user/model"
)

// MigrateAll keeps the schema in sync on boot. gen_random_uuid needs the
// pgcrypto extension on Postgres < 13.
func MigrateAll() {
	err := DB.AutoMigrate(
		&userModel.User{},
		&profileModel.Profile{},
		&profileModel.Section{},
		&authModel.RefreshToken{},
		&authModel.TokenBlacklist{},
		&eventModel.Event{},
		&attendanceModel.EventAttendance{},
		&noticeModel.Notice{},
		&workModel.Work{},
		&statsModel.UserStats{},
		&statsModel.Badge{},
		&statsModel.UserBadge{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ schema migrated")
}
