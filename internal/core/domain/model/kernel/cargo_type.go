package kernel

import (
	"fmt"
	"strings"

	"cargofresh/internal/pkg/errs"
)

// CargoType classifies a shipment and selects its tariff multiplier.
type CargoType int

const (
	UnknownCargo CargoType = iota
	Fresh
	Frozen
	Dry
)

func getCargoTypeNames() map[CargoType]string {
	return map[CargoType]string{
		Fresh:  "Fresh",
		Frozen: "Frozen",
		Dry:    "Dry",
	}
}

// Spanish labels used by the public quoting form.
func getCargoTypeAliases() map[string]CargoType {
	return map[string]CargoType{
		"fresh":     Fresh,
		"fresco":    Fresh,
		"frozen":    Frozen,
		"congelado": Frozen,
		"dry":       Dry,
		"seco":      Dry,
	}
}

// CargoTypes lists the valid cargo types.
func CargoTypes() []CargoType {
	return []CargoType{Fresh, Frozen, Dry}
}

// ParseCargoType accepts English names and the Spanish labels Fresco, Congelado and Seco,
// case-insensitively. Blank input is a ValueIsRequiredError, anything unrecognized a
// ValueIsInvalidError.
func ParseCargoType(name string) (CargoType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return UnknownCargo, errs.NewValueIsRequiredError("cargo type")
	}

	if cargoType, ok := getCargoTypeAliases()[key]; ok {
		return cargoType, nil
	}

	return UnknownCargo, errs.NewValueIsInvalidErrorWithCause(
		"cargo type",
		fmt.Errorf("%q is not a known cargo type", name),
	)
}

// Validate rejects UnknownCargo and out-of-range values.
func (c CargoType) Validate() error {
	if c == UnknownCargo {
		return errs.NewValueIsRequiredError("cargo type")
	}
	if _, ok := getCargoTypeNames()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cargo type", fmt.Errorf("%d is not a valid cargo type", c))
	}
	return nil
}

func (c CargoType) String() string {
	if name, ok := getCargoTypeNames()[c]; ok {
		return name
	}
	return "Unknown"
}
