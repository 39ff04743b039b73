package models

// RoleType defines the user role type
type RoleType string

const (
	RoleUser  RoleType = "USER"
	RoleAdmin RoleType = "ADMIN"
)

// IsValid reports whether the role is one of the enumerated values.
func (r RoleType) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}
