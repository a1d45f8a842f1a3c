package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cargofresh/internal/pkg/errs"
)

// Weight is a shipment weight in kilograms. Only positive finite values are valid.
type Weight struct {
	kg float64
}

// NewWeight validates kg and wraps it.
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a finite number", kg))
	}
	if kg <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", kg))
	}
	return Weight{kg: kg}, nil
}

// ParseWeight reads a decimal weight typed into the quoting form. A comma decimal
// separator is accepted ("150,5" == "150.5"). Blank input is a ValueIsRequiredError;
// non-numeric, non-finite or non-positive input is a ValueIsInvalidError.
func ParseWeight(raw string) (Weight, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return Weight{}, errs.NewValueIsRequiredError("weight")
	}

	clean = strings.Replace(clean, ",", ".", 1)
	kg, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%q is not a number", raw))
	}

	return NewWeight(kg)
}

// Kg returns the weight in kilograms.
func (w Weight) Kg() float64 {
	return w.kg
}

// Validate rejects the zero value.
func (w Weight) Validate() error {
	if w.kg <= 0 {
		return errs.NewValueIsRequiredError("weight")
	}
	return nil
}

func (w Weight) String() string {
	return strconv.FormatFloat(w.kg, 'f', -1, 64)
}
