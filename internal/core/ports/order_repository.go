// Package ports defines the contracts between the quoting core and its adapters.
// These interfaces keep the domain free of storage and network details and let
// use cases be tested against mocks.
package ports

import (
	"context"

	"cargofresh/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for the order book.
type OrderRepository interface {
	// Add stores a new order. Its ID must not already be present.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces a stored order with the same ID.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given ID or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// List returns every order, most recently added first.
	List(ctx context.Context) ([]*order.Order, error)

	// NextID reserves an identifier that no stored or previously reserved order uses.
	NextID(ctx context.Context) (order.ID, error)
}
