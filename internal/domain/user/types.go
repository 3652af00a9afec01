package user

// Role mirrors the platform's access tiers: platform operators, winery owners,
// tasting-room managers, and end users booking experiences.
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleWineryAdmin   Role = "winery_admin"
	RoleOutletManager Role = "outlet_manager"
	RoleUser          Role = "user"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleWineryAdmin, RoleOutletManager, RoleUser:
		return true
	default:
		return false
	}
}

// CanManageOutlets reports whether the role may act on outlet bookings at all.
// Assignment to the specific outlet is checked separately.
func (r Role) CanManageOutlets() bool {
	switch r {
	case RoleSuperAdmin, RoleWineryAdmin, RoleOutletManager:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
