package order

import (
	"fmt"

	"cargofresh/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PendingAuthorization ──> Authorized
//
// InRoute only appears on orders loaded from seed data; no transition leads to it.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// PendingAuthorization is the status of every order a client confirms.
	PendingAuthorization

	// Authorized orders were approved by an administrator.
	Authorized

	// InRoute orders are travelling.
	InRoute
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		PendingAuthorization: "PendingAuthorization",
		Authorized:           "Authorized",
		InRoute:              "InRoute",
	}
}

// Labels shown on the dashboards.
func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no label
	return map[Status]string{
		PendingAuthorization: "Pendiente de Autorización",
		Authorized:           "Autorizado",
		InRoute:              "En Ruta",
	}
}

// Validate accepts PendingAuthorization, Authorized and InRoute.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Label returns the Spanish dashboard label, or "" for invalid statuses.
func (s Status) Label() string {
	return getStatusLabels()[s]
}

// ValidateAuthorize checks that the status can move to Authorized.
func (s Status) ValidateAuthorize() error {
	if s != PendingAuthorization {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to authorize", s.String()),
		)
	}
	return nil
}

// Authorize transitions PendingAuthorization to Authorized. Every other status is rejected.
func (s Status) Authorize() (Status, error) {
	if err := s.ValidateAuthorize(); err != nil {
		return 0, err
	}
	return Authorized, nil
}
