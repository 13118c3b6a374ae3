package model

// Role is the closed set of membership roles. Root is the owning user's
// role and is only ever written by project creation.
type Role string

const (
	RoleRoot  Role = "root"
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleRoot, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Display maps root to the admin-level label clients see on listings.
func (r Role) Display() string {
	if r == RoleRoot {
		return string(RoleAdmin)
	}
	return string(r)
}
