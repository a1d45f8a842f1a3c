package session

import (
	"cargofresh/internal/core/domain/model/quote"
)

// Session is the authentication state of a visitor.
type Session struct {
	Authenticated bool
	Role          Role
	DisplayName   string
}

// State is everything the core tracks for one visitor.
// Estimate and PendingQuote are nil when absent. The values they point to are
// never modified once a State holds them, so copies of a State may share them.
type State struct {
	View         View
	Session      Session
	Form         quote.ShipmentForm
	Estimate     *quote.Estimate
	PendingQuote *quote.PendingQuote
}

// InitialState is the state of a new visitor: Landing, anonymous, empty form.
func InitialState() State {
	return State{View: Landing}
}

// HasPendingQuote reports whether a quote awaits confirmation.
func (s State) HasPendingQuote() bool {
	return s.PendingQuote != nil
}

func (s State) withoutEstimate() State {
	s.Estimate = nil
	return s
}
