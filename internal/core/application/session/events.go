package session

import (
	"cargofresh/internal/core/domain/model/order"
)

// Event is one visitor action. The set of events is closed.
type Event interface {
	eventName() string
}

type (
	// EditOrigin sets the origin port field of the quoting form.
	EditOrigin struct{ Value string }
	// EditDestination sets the destination port field.
	EditDestination struct{ Value string }
	// EditCargoType sets the cargo type field.
	EditCargoType struct{ Value string }
	// EditWeight sets the weight field, in kilograms as typed.
	EditWeight struct{ Value string }
	// EditLastMile toggles door-to-door delivery.
	EditLastMile struct{ Value bool }

	// CalculateEstimate prices the form.
	CalculateEstimate struct{}
	// RequestClientArea opens the login prompt.
	RequestClientArea struct{}
	// BuyNow turns the current estimate into a pending quote and asks for login.
	BuyNow struct{}
	// Login signs in with the chosen role.
	Login struct{ Role Role }
	// CancelLogin goes back to Landing.
	CancelLogin struct{}
	// ConfirmPendingQuote places an order from the pending quote.
	ConfirmPendingQuote struct{}
	// DiscardPendingQuote drops the pending quote.
	DiscardPendingQuote struct{}
	// Logout ends the session.
	Logout struct{}
	// AuthorizeOrder approves an order awaiting authorization.
	AuthorizeOrder struct{ ID order.ID }
)

func (EditOrigin) eventName() string          { return "edit-origin" }
func (EditDestination) eventName() string     { return "edit-destination" }
func (EditCargoType) eventName() string       { return "edit-cargo-type" }
func (EditWeight) eventName() string          { return "edit-weight" }
func (EditLastMile) eventName() string        { return "edit-last-mile" }
func (CalculateEstimate) eventName() string   { return "calculate-estimate" }
func (RequestClientArea) eventName() string   { return "request-client-area" }
func (BuyNow) eventName() string              { return "buy-now" }
func (Login) eventName() string               { return "login" }
func (CancelLogin) eventName() string         { return "cancel-login" }
func (ConfirmPendingQuote) eventName() string { return "confirm-pending-quote" }
func (DiscardPendingQuote) eventName() string { return "discard-pending-quote" }
func (Logout) eventName() string              { return "logout" }
func (AuthorizeOrder) eventName() string      { return "authorize-order" }

// EventName returns a stable name for logging.
func EventName(e Event) string {
	if e == nil {
		return "nil"
	}
	return e.eventName()
}
