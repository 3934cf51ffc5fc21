package controller

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attendanceModel "orquestra_backend/internals/features/agenda/attendance/model"
	attendanceService "orquestra_backend/internals/features/agenda/attendance/service"
)

// newDryRunDB builds SQL without touching a database. lib/pq registers the
// "postgres" driver via the helpers package import.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        "postgres://dryrun/dryrun",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestSectionCountsQueryGroupsBySelectedExpression(t *testing.T) {
	db := newDryRunDB(t)

	var counts []attendanceService.SectionCount
	tx := sectionCountsQuery(db).Find(&counts)
	if tx.Error != nil {
		t.Fatalf("build query: %v", tx.Error)
	}
	sql := tx.Statement.SQL.String()

	// Postgres matches GROUP BY entries against the SELECT list by text, a
	// bind parameter on one side and a literal on the other do not pair up.
	expr := "COALESCE(NULLIF(profiles.section, ''), 'Outros')"
	if got := strings.Count(sql, expr); got != 2 {
		t.Fatalf("fallback expression must appear verbatim in SELECT and GROUP BY, found %d in:\n%s", got, sql)
	}
	for _, v := range tx.Statement.Vars {
		if s, ok := v.(string); ok && (s == "Outros" || s == "confirmado") {
			t.Errorf("%q must be inlined in the aggregate, not bound", s)
		}
	}
	if !strings.Contains(sql, "GROUP BY "+expr) {
		t.Errorf("GROUP BY must use the selected expression:\n%s", sql)
	}
}

func TestSectionCountsQuerySpansAllEvents(t *testing.T) {
	db := newDryRunDB(t)

	var counts []attendanceService.SectionCount
	tx := sectionCountsQuery(db).Find(&counts)
	if tx.Error != nil {
		t.Fatalf("build query: %v", tx.Error)
	}
	sql := tx.Statement.SQL.String()

	if strings.Contains(sql, "starts_at") {
		t.Errorf("section ranking aggregates across all events, no date filter:\n%s", sql)
	}
	if !strings.Contains(sql, "events.deleted_at IS NULL") {
		t.Errorf("soft-deleted events must stay excluded:\n%s", sql)
	}
}

func TestAttendanceUpsertClause(t *testing.T) {
	db := newDryRunDB(t)

	markedBy := uuid.New()
	record := attendanceModel.EventAttendance{
		EventID:  uuid.New(),
		UserID:   uuid.New(),
		Status:   attendanceModel.StatusConfirmado,
		MarkedBy: &markedBy,
	}
	tx := db.Clauses(attendanceConflict()).Create(&record)
	if tx.Error != nil {
		t.Fatalf("build insert: %v", tx.Error)
	}
	sql := tx.Statement.SQL.String()

	if !strings.Contains(sql, `ON CONFLICT ("event_id","user_id") DO UPDATE`) {
		t.Fatalf("upsert must target the (event_id,user_id) pair:\n%s", sql)
	}
	for _, col := range []string{`"status"="excluded"."status"`, `"marked_by"="excluded"."marked_by"`, `"updated_at"="excluded"."updated_at"`} {
		if !strings.Contains(sql, col) {
			t.Errorf("conflict update must overwrite %s:\n%s", col, sql)
		}
	}
}

// Repeating a write for the same (event_id, user_id) must produce the same
// upsert statement shape, the second submission overwrites instead of
// duplicating.
func TestAttendanceUpsertIsRepeatable(t *testing.T) {
	db := newDryRunDB(t)

	eventID, userID := uuid.New(), uuid.New()
	render := func(status string) string {
		record := attendanceModel.EventAttendance{EventID: eventID, UserID: userID, Status: status}
		tx := db.Session(&gorm.Session{DryRun: true}).Clauses(attendanceConflict()).Create(&record)
		if tx.Error != nil {
			t.Fatalf("build insert: %v", tx.Error)
		}
		return tx.Statement.SQL.String()
	}

	first := render(attendanceModel.StatusConfirmado)
	second := render(attendanceModel.StatusAusente)
	if !strings.Contains(first, "ON CONFLICT") || !strings.Contains(second, "ON CONFLICT") {
		t.Fatal("both writes must go through the conflict clause")
	}
	if first != second {
		t.Errorf("statement shape must not depend on the status value:\nfirst:  %s\nsecond: %s", first, second)
	}
}
