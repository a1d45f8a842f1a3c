// Package queries contains read operations over the order book.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return flat read models shaped for the dashboards.
package queries

import (
	"context"
	"errors"

	"cargofresh/internal/core/domain/model/order"
	"cargofresh/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// OrderReader is the read side of the order repository.
type OrderReader interface {
	List(ctx context.Context) ([]*order.Order, error)
}

// ListOrdersQuery retrieves every order, most recent first.
//
// Example:
//
//	query := NewListOrdersQuery()
//	handler := NewListOrdersQueryHandler(repo)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s ➝ %s %s\n", o.ID, o.Origin, o.Destination, o.StatusLabel)
//	}
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a parameterless listing query.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderView is the read model of one order as the dashboards show it.
type OrderView struct {
	ID          string
	Client      string
	Origin      string
	Destination string
	CargoType   string
	WeightKg    float64
	Price       int
	Status      string
	StatusLabel string
	Date        string
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:          o.ID().String(),
		Client:      o.Client(),
		Origin:      o.Origin().String(),
		Destination: o.Destination().String(),
		CargoType:   o.CargoType().String(),
		WeightKg:    o.Weight().Kg(),
		Price:       o.Price(),
		Status:      o.Status().String(),
		StatusLabel: o.Status().Label(),
		Date:        o.CreatedDate(),
	}
}
