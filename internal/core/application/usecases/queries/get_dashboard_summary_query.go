package queries

import (
	"errors"

	"cargofresh/internal/pkg/guard"
)

var (
	ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
		"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
	)
)

// GetDashboardSummaryQuery counts orders for the client dashboard cards.
type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardSummaryQuery creates a parameterless summary query.
func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// DashboardSummary holds the dashboard counters.
// Active counts every order not yet delivered; no order reaches delivery in this service.
type DashboardSummary struct {
	Active               int
	PendingAuthorization int
}
