package profile

import (
	"fmt"

	"loadboard/internal/pkg/errs"
)

// Role determines which marketplace view a profile gets and which lifecycle
// actions it may trigger.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleShipper posts loads and owns them until assignment.
	RoleShipper

	// RoleDriver browses open loads and commits to fulfilling them.
	RoleDriver

	// RoleAdmin views aggregate marketplace statistics only.
	RoleAdmin
)

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleShipper: "shipper",
		RoleDriver:  "driver",
		RoleAdmin:   "admin",
	}
}

// ParseRole converts a wire name ("shipper", "driver", "admin") into a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
