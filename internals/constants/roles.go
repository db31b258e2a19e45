package constants

import "fmt"

// Role yang dikenal core (resolusi role terjadi di auth service upstream)
const (
	RoleStudent = "student"
	RoleCoach   = "coach"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

// Template pesan error role
const (
	ErrOnlyCoachesCanAccess = "❌ Hanya coach, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorCoach(feature string) string {
	return fmt.Sprintf(ErrOnlyCoachesCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleCoach,
		RoleAdmin,
		RoleOwner,
	}

	JudgingRoles = []string{
		RoleCoach,
		RoleAdmin,
		RoleOwner,
	}
)
