// file: internals/features/agenda/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"orquestra_backend/internals/constants"
	attendanceController "orquestra_backend/internals/features/agenda/attendance/controller"
	authMiddleware "orquestra_backend/internals/middlewares/auth"
)

// AttendanceUserRoutes mounts the member-facing attendance endpoints.
func AttendanceUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := router.Group("/attendance")
	attendance.Post("/events/:id/confirm", ctrl.ConfirmMe)
	attendance.Get("/ranking", ctrl.GetRanking)
	attendance.Get("/me/frequency", ctrl.GetMyFrequency)
}

// AttendanceAdminRoutes mounts the roll-call endpoints for staff.
func AttendanceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := router.Group("/attendance",
		authMiddleware.RequireStaff(constants.RoleErrorStaff("a chamada")))
	attendance.Get("/events/:id/roster", ctrl.GetRoster)
	attendance.Post("/events/:id/bulk", ctrl.SubmitBulk)
}
