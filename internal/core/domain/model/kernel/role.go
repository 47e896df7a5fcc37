package kernel

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Role is the closed set of actor roles. Exactly one admin identity exists;
// every registered identity is a buyer and never changes role.
type Role int

const (
	// RoleUnknown is the invalid zero value.
	RoleUnknown Role = iota
	// RoleBuyer browses, fills a cart, checks out and drives the buyer side of service orders.
	RoleBuyer
	// RoleAdmin manages the catalog, settings and the admin side of every order.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleBuyer: "buyer",
		RoleAdmin: "admin",
	}
}

// String returns the wire name of the role ("buyer", "admin") or "unknown".
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole maps a wire name back to a Role, case-insensitively.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
