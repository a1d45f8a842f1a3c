package session

import (
	"fmt"
	"strings"

	"cargofresh/internal/pkg/errs"
)

// View is the screen a visitor is on.
type View int

const (
	Landing View = iota
	LoginPrompt
	ClientDashboard
	AdminDashboard
)

func getViewStrings() map[View]string {
	return map[View]string{
		Landing:         "landing",
		LoginPrompt:     "login",
		ClientDashboard: "client-dashboard",
		AdminDashboard:  "admin-dashboard",
	}
}

func (v View) String() string {
	if s, ok := getViewStrings()[v]; ok {
		return s
	}
	return "unknown"
}

// Role is the kind of account a visitor logged in as.
type Role int

const (
	NoRole Role = iota
	Client
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		NoRole: "",
		Client: "client",
		Admin:  "admin",
	}
}

// ParseRole accepts "client" and "admin", case-insensitively.
func ParseRole(s string) (Role, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return NoRole, errs.NewValueIsRequiredError("role")
	}

	for role, name := range getRoleStrings() {
		if role != NoRole && name == key {
			return role, nil
		}
	}

	return NoRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	return getRoleStrings()[r]
}

// Validate rejects NoRole and unknown values.
func (r Role) Validate() error {
	switch r {
	case Client, Admin:
		return nil
	case NoRole:
		return errs.NewValueIsRequiredError("role")
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
}

// Display names handed out by the demo login. No credentials are checked.
const (
	ClientDisplayName = "Cliente Demo S.A."
	AdminDisplayName  = "Administrador CargoFresh"
)

func (r Role) displayName() string {
	if r == Admin {
		return AdminDisplayName
	}
	return ClientDisplayName
}

func (r Role) dashboard() View {
	if r == Admin {
		return AdminDashboard
	}
	return ClientDashboard
}
