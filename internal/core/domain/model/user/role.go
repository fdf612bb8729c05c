package user

import (
	"fmt"
	"strings"

	"wms/internal/pkg/errs"
)

// Role is the tagged kind of a user.
type Role int

const (
	// Unknown catches uninitialized Role values.
	Unknown Role = iota
	Owner
	Agent
	Tenant
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown: "UNKNOWN",
		Owner:   "OWNER",
		Agent:   "AGENT",
		Tenant:  "TENANT",
		Admin:   "ADMIN",
	}
}

// ParseRole maps a role name to its Role, ignoring case and surrounding spaces.
func ParseRole(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if role != Unknown && str == name {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", s))
}

// Validate rejects Unknown and out-of-range values.
func (r Role) Validate() error {
	if r <= Unknown || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsSelfRegistrable reports whether the role may be chosen on the registration form.
func (r Role) IsSelfRegistrable() bool {
	return r == Owner || r == Agent || r == Tenant
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
