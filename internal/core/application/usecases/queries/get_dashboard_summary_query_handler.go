package queries

import (
	"context"

	"cargofresh/internal/core/domain/model/order"
)

// GetDashboardSummaryQueryHandler aggregates order counts.
type GetDashboardSummaryQueryHandler struct {
	orders OrderReader
}

// NewGetDashboardSummaryQueryHandler creates a handler over an order reader.
func NewGetDashboardSummaryQueryHandler(orders OrderReader) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{orders: orders}
}

// Handle counts active and pending orders.
func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (DashboardSummary, error) {
	if err := query.Validate(); err != nil {
		return DashboardSummary{}, err
	}

	orders, err := h.orders.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	var summary DashboardSummary
	for _, o := range orders {
		summary.Active++
		if o.Status() == order.PendingAuthorization {
			summary.PendingAuthorization++
		}
	}

	return summary, nil
}
