package models

import (
	"database/sql/driver"
	"fmt"
)

// Role is the closed set of permission levels a user can hold.
type Role string

const (
	RoleSuperAdmin   Role = "super-admin"
	RoleAdmin        Role = "admin"
	RoleSubAdmin     Role = "sub-admin"
	RoleManager      Role = "manager"
	RoleAdminManager Role = "adminManager"
)

// AllRoles lists every role in declaration order.
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleSubAdmin, RoleManager, RoleAdminManager}

func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts a raw string into a Role, rejecting anything outside the enum.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Value stores the role as its string form.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("unknown role %q", string(r))
	}
	return string(r), nil
}

// Scan reads a role column back, refusing values that are not part of the enum.
func (r *Role) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}
	parsed, err := ParseRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
