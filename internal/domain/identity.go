package domain

// Role is the caller's role as established by the authentication boundary.
// The service does not authenticate anyone itself; it receives an already
// verified (userID, role) pair and re-checks permissions defensively.
type Role string

const (
	RolePlayer Role = "player"
	RoleOwner  Role = "owner"
)

// ValidRole reports whether r is a known role
func ValidRole(r Role) bool {
	return r == RolePlayer || r == RoleOwner
}
