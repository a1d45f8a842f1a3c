package assistant

import (
	"errors"
	"strings"

	"cargofresh/internal/pkg/errs"
	"cargofresh/internal/pkg/guard"
)

var (
	ErrAdvisePackagingQueryIsNotConstructed = errors.New(
		"AdvisePackagingQuery must be created via NewAdvisePackagingQuery constructor",
	)
)

// AdvisePackagingQuery asks how to keep a product fresh in transit.
type AdvisePackagingQuery struct {
	product string

	guard guard.ConstructorGuard
}

// NewAdvisePackagingQuery rejects a blank product name.
func NewAdvisePackagingQuery(product string) (AdvisePackagingQuery, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return AdvisePackagingQuery{}, errs.NewValueIsRequiredError("product")
	}

	return AdvisePackagingQuery{
		product: product,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AdvisePackagingQuery) Validate() error {
	return q.guard.Validate(ErrAdvisePackagingQueryIsNotConstructed)
}

// Product returns the trimmed product name.
func (q AdvisePackagingQuery) Product() string {
	return q.product
}
