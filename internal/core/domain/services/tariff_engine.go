package services

import (
	"errors"
	"fmt"
	"math"

	"cargofresh/internal/core/domain/model/kernel"
	"cargofresh/internal/core/domain/model/quote"
	"cargofresh/internal/pkg/errs"
)

// ErrTariffEngineIsNotConstructed is returned by an engine that was not built with NewTariffEngine.
var ErrTariffEngineIsNotConstructed = errors.New("TariffEngine must be created via NewTariffEngine constructor")

// Rates is the tariff configuration table. Amounts are in pesos.
//
// FrequentClientDiscount is carried for completeness and not applied by the engine.
type Rates struct {
	BaseCost               float64
	PerKgRate              float64
	FrozenMultiplier       float64
	FreshMultiplier        float64
	DryMultiplier          float64
	LastMileSurcharge      float64
	FrequentClientDiscount float64
	BandLow                float64
	BandHigh               float64
}

// DefaultRates returns the published tariff.
func DefaultRates() Rates {
	return Rates{
		BaseCost:               800,
		PerKgRate:              12,
		FrozenMultiplier:       1.25,
		FreshMultiplier:        1.10,
		DryMultiplier:          1.0,
		LastMileSurcharge:      450,
		FrequentClientDiscount: 0.15,
		BandLow:                0.95,
		BandHigh:               1.05,
	}
}

// Validate checks that costs are non-negative, multipliers positive, the discount a
// fraction and the band ordered.
func (r Rates) Validate() error {
	var problems []error

	for _, cost := range []struct {
		name  string
		value float64
	}{
		{"base cost", r.BaseCost},
		{"per kg rate", r.PerKgRate},
		{"last mile", r.LastMileSurcharge},
	} {
		if !isFinite(cost.value) || cost.value < 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(cost.name, fmt.Errorf("%v is not a non-negative amount", cost.value)))
		}
	}

	for _, multiplier := range []struct {
		name  string
		value float64
	}{
		{"frozen multiplier", r.FrozenMultiplier},
		{"fresh multiplier", r.FreshMultiplier},
		{"dry multiplier", r.DryMultiplier},
		{"band low", r.BandLow},
		{"band high", r.BandHigh},
	} {
		if !isFinite(multiplier.value) || multiplier.value <= 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(multiplier.name, fmt.Errorf("%v is not greater than 0", multiplier.value)))
		}
	}

	if !isFinite(r.FrequentClientDiscount) || r.FrequentClientDiscount < 0 || r.FrequentClientDiscount > 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("frequent discount", r.FrequentClientDiscount, 0, 1))
	}

	if r.BandLow > r.BandHigh {
		problems = append(problems, errs.NewValueIsOutOfRangeError("band low", r.BandLow, 0, r.BandHigh))
	}

	return errors.Join(problems...)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// TariffEngine prices shipments. It is stateless and safe for concurrent use.
//
// Pricing:
//
//	total = BaseCost + kg*PerKgRate
//	total *= FrozenMultiplier | FreshMultiplier | DryMultiplier   (by cargo type)
//	total += LastMileSurcharge                                    (if requested)
//	min, max = round(total*BandLow), round(total*BandHigh)
//
// Rounding is math.Round: half away from zero.
//
// Example:
//
//	engine, _ := NewTariffEngine(DefaultRates())
//	estimate, err := engine.Estimate(kernel.Frozen, weight, false)
//	// 500 kg frozen: total 8500, estimate {8075 8925}
type TariffEngine struct {
	rates         Rates
	isConstructed bool
}

// NewTariffEngine validates rates and returns an engine using them.
func NewTariffEngine(rates Rates) (TariffEngine, error) {
	if err := rates.Validate(); err != nil {
		return TariffEngine{}, err
	}
	return TariffEngine{rates: rates, isConstructed: true}, nil
}

// Rates returns the configuration the engine prices with.
func (e TariffEngine) Rates() Rates {
	return e.rates
}

// Estimate prices a shipment of the given cargo type and weight.
// Errors are ValueIsRequiredError for a missing cargo type or weight,
// ValueIsInvalidError for values that cannot be priced and ValueIsOutOfRangeError
// for weights whose price does not fit an int.
func (e TariffEngine) Estimate(cargoType kernel.CargoType, weight kernel.Weight, lastMile bool) (quote.Estimate, error) {
	if !e.isConstructed {
		return quote.Estimate{}, ErrTariffEngineIsNotConstructed
	}

	if err := errors.Join(weight.Validate(), cargoType.Validate()); err != nil {
		return quote.Estimate{}, err
	}

	total := e.rates.BaseCost + weight.Kg()*e.rates.PerKgRate

	switch cargoType {
	case kernel.Frozen:
		total *= e.rates.FrozenMultiplier
	case kernel.Fresh:
		total *= e.rates.FreshMultiplier
	case kernel.Dry:
		total *= e.rates.DryMultiplier
	case kernel.UnknownCargo:
	}

	if lastMile {
		total += e.rates.LastMileSurcharge
	}

	low := math.Round(total * e.rates.BandLow)
	high := math.Round(total * e.rates.BandHigh)
	if !isFinite(high) || high >= maxAmount {
		return quote.Estimate{}, errs.NewValueIsOutOfRangeError("weight", weight.Kg(), 0, e.maxWeightKg(cargoType, lastMile))
	}

	return quote.NewEstimate(int(low), int(high))
}

// maxAmount is the first amount an int cannot hold on this platform.
const maxAmount = float64(math.MaxInt)

// maxWeightKg is the heaviest shipment whose upper bound still fits an int.
func (e TariffEngine) maxWeightKg(cargoType kernel.CargoType, lastMile bool) float64 {
	multiplier := e.rates.DryMultiplier
	switch cargoType {
	case kernel.Frozen:
		multiplier = e.rates.FrozenMultiplier
	case kernel.Fresh:
		multiplier = e.rates.FreshMultiplier
	case kernel.Dry, kernel.UnknownCargo:
	}

	total := maxAmount / e.rates.BandHigh
	if lastMile {
		total -= e.rates.LastMileSurcharge
	}
	if e.rates.PerKgRate == 0 {
		return math.Inf(1)
	}
	return math.Max(0, (total/multiplier-e.rates.BaseCost)/e.rates.PerKgRate)
}

// EstimateRaw parses raw form input and prices it. Missing fields are checked
// before the weight is parsed, so "" and "abc" produce different error kinds.
func (e TariffEngine) EstimateRaw(cargoType, weight string, lastMile bool) (quote.Estimate, error) {
	parsedWeight, weightErr := kernel.ParseWeight(weight)
	parsedType, typeErr := kernel.ParseCargoType(cargoType)
	if err := errors.Join(weightErr, typeErr); err != nil {
		return quote.Estimate{}, err
	}

	return e.Estimate(parsedType, parsedWeight, lastMile)
}
