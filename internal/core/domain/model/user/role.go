package user

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Role is the closed enumeration of staff roles. Modeled as a tagged
// constant set rather than open strings so that invalid values are caught at
// construction time.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin can manage users and all bakery data.
	RoleAdmin

	// RoleBaker prepares orders and moves them through the kitchen workflow.
	RoleBaker

	// RoleBarista takes orders at the counter and hands them over.
	RoleBarista
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleAdmin:   "Admin",
		RoleBaker:   "Baker",
		RoleBarista: "Barista",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// RoleUnknown is excluded to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:   "Admin",
		RoleBaker:   "Baker",
		RoleBarista: "Barista",
	}
}

// Validate checks that the Role is one of the defined staff roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role, e.g. "Baker".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
