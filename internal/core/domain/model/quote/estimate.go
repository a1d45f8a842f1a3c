package quote

import (
	"fmt"

	"cargofresh/internal/pkg/errs"
)

// Currency of every estimate and order price. Amounts exclude tax.
const Currency = "MXN"

// Estimate is a price band in whole pesos, tax exclusive.
type Estimate struct {
	Min int
	Max int
}

// NewEstimate validates that the band is non-negative and ordered.
func NewEstimate(minPrice, maxPrice int) (Estimate, error) {
	if minPrice < 0 {
		return Estimate{}, errs.NewValueIsInvalidErrorWithCause("estimate", fmt.Errorf("min %d is negative", minPrice))
	}
	if minPrice > maxPrice {
		return Estimate{}, errs.NewValueIsOutOfRangeError("estimate min", minPrice, 0, maxPrice)
	}
	return Estimate{Min: minPrice, Max: maxPrice}, nil
}
