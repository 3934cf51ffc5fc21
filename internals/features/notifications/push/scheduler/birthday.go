// file: internals/features/notifications/push/scheduler/birthday.go
package scheduler

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	pushService "orquestra_backend/internals/features/notifications/push/service"
)

// StartBirthdayScheduler announces member birthdays once a day at 09:00.
func StartBirthdayScheduler(db *gorm.DB) {
	go func() {
		for {
			time.Sleep(untilNextRun(time.Now()))
			runBirthdayCheck(db, time.Now())
		}
	}()
}

func untilNextRun(now time.Time) time.Duration {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.Local
	}
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

type birthdayRow struct {
	Nickname string
	UserName string
}

func runBirthdayCheck(db *gorm.DB, today time.Time) {
	var rows []birthdayRow
	err := db.Table("profiles").
		Select("profiles.nickname, users.user_name").
		Joins("JOIN users ON users.id = profiles.user_id AND users.deleted_at IS NULL AND users.status = 'ativo'").
		Where("profiles.birth_date IS NOT NULL AND to_char(profiles.birth_date, 'MM-DD') = ?", today.Format("01-02")).
		Scan(&rows).Error
	if err != nil {
		log.Println("[ERROR] birthday lookup failed:", err)
		return
	}
	if len(rows) == 0 {
		return
	}

	for _, row := range rows {
		name := row.Nickname
		if name == "" {
			name = row.UserName
		}
		title := "🎂 Aniversário na orquestra!"
		body := fmt.Sprintf("Hoje é aniversário de %s! Deixe seus parabéns 🎉", name)
		if err := pushService.Broadcast(db, title, body, map[string]string{"type": "birthday"}); err != nil {
			log.Println("[ERROR] birthday broadcast failed:", err)
		}
	}
	log.Printf("[INFO] birthday check announced %d member(s)", len(rows))
}
