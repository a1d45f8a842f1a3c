package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargofresh/internal/core/domain/model/kernel"
	"cargofresh/internal/core/domain/model/quote"
	"cargofresh/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a client's confirmed shipment. It is the aggregate root of the order book.
//
// Invariants:
//   - id, client, both ports, cargo type and weight are always set
//   - price is not negative
//   - status only ever moves PendingAuthorization -> Authorized
type Order struct {
	id          ID
	client      string
	origin      kernel.Port
	destination kernel.Port
	cargoType   kernel.CargoType
	weight      kernel.Weight
	price       int
	status      Status
	createdAt   time.Time

	isConstructed bool
}

// NewOrder turns a confirmed pending quote into an order awaiting authorization.
//
// Example:
//
//	id, _ := repo.NextID(ctx)
//	o, err := order.NewOrder(id, "Cliente Demo S.A.", pending, clock.Now())
func NewOrder(id ID, client string, pending quote.PendingQuote, createdAt time.Time) (*Order, error) {
	if err := pending.Validate(); err != nil {
		return nil, err
	}

	request := pending.Request()
	return RestoreOrder(
		id,
		client,
		request.Origin(),
		request.Destination(),
		request.CargoType(),
		request.Weight(),
		pending.Price(),
		PendingAuthorization,
		createdAt,
	)
}

// RestoreOrder rebuilds an order in any valid status, e.g. from seed data.
func RestoreOrder(
	id ID,
	client string,
	origin, destination kernel.Port,
	cargoType kernel.CargoType,
	weight kernel.Weight,
	price int,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClient(client),
		o.setRoute(origin, destination),
		o.setCargoType(cargoType),
		o.setWeight(weight),
		o.setPrice(price),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() ID {
	return o.id
}

// Client returns the display name of the ordering client.
func (o *Order) Client() string {
	return o.client
}

func (o *Order) Origin() kernel.Port {
	return o.origin
}

func (o *Order) Destination() kernel.Port {
	return o.destination
}

func (o *Order) CargoType() kernel.CargoType {
	return o.cargoType
}

func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// Price returns the agreed price in whole pesos.
func (o *Order) Price() int {
	return o.price
}

func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CreatedDate returns the placement date as YYYY-MM-DD.
func (o *Order) CreatedDate() string {
	return o.createdAt.Format(time.DateOnly)
}

// Authorize approves an order awaiting authorization.
// Orders in any other status are left untouched and an error is returned.
func (o *Order) Authorize() error {
	newStatus, err := o.status.Authorize()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	return &c
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClient(client string) error {
	client = strings.TrimSpace(client)
	if client == "" {
		return errs.NewValueIsRequiredError("client")
	}
	o.client = client
	return nil
}

func (o *Order) setRoute(origin, destination kernel.Port) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	o.origin = origin
	o.destination = destination
	return nil
}

func (o *Order) setCargoType(cargoType kernel.CargoType) error {
	if err := cargoType.Validate(); err != nil {
		return err
	}
	o.cargoType = cargoType
	return nil
}

func (o *Order) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func (o *Order) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	o.price = price
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
