package model

// Role is the closed set of permission levels a user can hold. Roles are
// stored as strings in the `users` table but must never be trusted as free
// text: every write boundary validates against this enum.
type Role string

const (
	RoleAdmin      Role = "admin"      // full access including deletes and user management
	RoleEditor     Role = "editor"     // may create and update content
	RoleTranslator Role = "translator" // may edit localized fields only (default for new users)
	RoleViewer     Role = "viewer"     // read-only access to the admin dashboard
)

// DefaultRole is assigned when no role is specified at creation time. It is
// the least-privileged role that still allows content work.
const DefaultRole = RoleTranslator

// ValidRole reports whether s is one of the enumerated role values.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleEditor, RoleTranslator, RoleViewer:
		return true
	}
	return false
}
