package queries

import (
	"context"
)

// ListOrdersQueryHandler reads the order book.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

// NewListOrdersQueryHandler creates a handler over an order reader.
func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle returns the order views in listing order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}

	return views, nil
}
