package quote

import (
	"errors"

	"cargofresh/internal/core/domain/model/kernel"
	"cargofresh/internal/pkg/guard"
)

var ErrShipmentRequestIsNotConstructed = errors.New(
	"ShipmentRequest must be created via NewShipmentRequest constructor",
)

// ShipmentForm is the quoting form as typed by the visitor. Fields hold raw text
// and are only interpreted by Request or the tariff engine.
type ShipmentForm struct {
	Origin      string
	Destination string
	CargoType   string
	Weight      string
	LastMile    bool
}

// Request parses every field of the form and returns all problems at once.
func (f ShipmentForm) Request() (ShipmentRequest, error) {
	origin, originErr := kernel.ParsePort(f.Origin)
	destination, destinationErr := kernel.ParsePort(f.Destination)
	cargoType, cargoErr := kernel.ParseCargoType(f.CargoType)
	weight, weightErr := kernel.ParseWeight(f.Weight)

	if err := errors.Join(originErr, destinationErr, cargoErr, weightErr); err != nil {
		return ShipmentRequest{}, err
	}

	return NewShipmentRequest(origin, destination, cargoType, weight, f.LastMile)
}

// ShipmentRequest is a validated shipment ready to be priced or ordered.
type ShipmentRequest struct { //nolint:recvcheck //using for validation
	origin      kernel.Port
	destination kernel.Port
	cargoType   kernel.CargoType
	weight      kernel.Weight
	lastMile    bool

	guard guard.ConstructorGuard
}

// NewShipmentRequest requires both ports, a cargo type and a positive weight.
func NewShipmentRequest(
	origin, destination kernel.Port,
	cargoType kernel.CargoType,
	weight kernel.Weight,
	lastMile bool,
) (ShipmentRequest, error) {
	request := ShipmentRequest{
		lastMile: lastMile,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		request.setOrigin(origin),
		request.setDestination(destination),
		request.setCargoType(cargoType),
		request.setWeight(weight),
	); err != nil {
		return ShipmentRequest{}, err
	}

	return request, nil
}

func (r ShipmentRequest) Validate() error {
	return r.guard.Validate(ErrShipmentRequestIsNotConstructed)
}

func (r ShipmentRequest) Origin() kernel.Port {
	return r.origin
}

func (r ShipmentRequest) Destination() kernel.Port {
	return r.destination
}

func (r ShipmentRequest) CargoType() kernel.CargoType {
	return r.cargoType
}

func (r ShipmentRequest) Weight() kernel.Weight {
	return r.weight
}

func (r ShipmentRequest) LastMile() bool {
	return r.lastMile
}

func (r *ShipmentRequest) setOrigin(origin kernel.Port) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	r.origin = origin
	return nil
}

func (r *ShipmentRequest) setDestination(destination kernel.Port) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *ShipmentRequest) setCargoType(cargoType kernel.CargoType) error {
	if err := cargoType.Validate(); err != nil {
		return err
	}
	r.cargoType = cargoType
	return nil
}

func (r *ShipmentRequest) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	r.weight = weight
	return nil
}
