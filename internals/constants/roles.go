package constants

import "fmt"

// Role values stored on users.role
const (
	RoleMusico  = "musico"
	RoleAdmin   = "admin"
	RoleMaestro = "maestro"
)

// Role error message templates
const (
	ErrOnlyStaffCanAccess   = "❌ Only admin, maestro or spalla may access %s."
	ErrOnlyAdminsCanAccess  = "❌ Only admin may access %s."
	ErrOnlyMaestroCanAccess = "❌ Only maestro or admin may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorMaestro(feature string) string {
	return fmt.Sprintf(ErrOnlyMaestroCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMusico,
		RoleAdmin,
		RoleMaestro,
	}

	// Staff = roles that may run roll-call, edit events, post notices.
	// Spalla and section leaders are flag-based and checked separately.
	StaffRoles = []string{
		RoleAdmin,
		RoleMaestro,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
