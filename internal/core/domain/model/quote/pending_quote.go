package quote

import (
	"errors"

	"cargofresh/internal/pkg/guard"
)

var ErrPendingQuoteIsNotConstructed = errors.New("PendingQuote must be created via NewPendingQuote constructor")

// PendingQuote is a priced shipment waiting for the visitor to log in and confirm it.
// Its price is the lower bound of the estimate it was created from.
type PendingQuote struct {
	request ShipmentRequest
	price   int

	guard guard.ConstructorGuard
}

// NewPendingQuote snapshots request and resolves its price from estimate.
func NewPendingQuote(request ShipmentRequest, estimate Estimate) (PendingQuote, error) {
	if err := request.Validate(); err != nil {
		return PendingQuote{}, err
	}

	if _, err := NewEstimate(estimate.Min, estimate.Max); err != nil {
		return PendingQuote{}, err
	}

	return PendingQuote{
		request: request,
		price:   estimate.Min,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q PendingQuote) Validate() error {
	return q.guard.Validate(ErrPendingQuoteIsNotConstructed)
}

// Request returns the shipment snapshot taken when the quote was created.
func (q PendingQuote) Request() ShipmentRequest {
	return q.request
}

// Price returns the quoted price in whole pesos.
func (q PendingQuote) Price() int {
	return q.price
}
