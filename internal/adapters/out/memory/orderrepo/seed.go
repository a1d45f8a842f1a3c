package orderrepo

import (
	"time"

	"cargofresh/internal/core/domain/model/kernel"
	"cargofresh/internal/core/domain/model/order"
)

// DemoOrders returns the orders the demo book starts with, in listing order.
func DemoOrders() ([]*order.Order, error) {
	frozen, err := kernel.NewWeight(500)
	if err != nil {
		return nil, err
	}
	fresh, err := kernel.NewWeight(200)
	if err != nil {
		return nil, err
	}

	first, err := order.RestoreOrder(
		"ORD-001", "Pesquera del Mar",
		kernel.Mazatlan, kernel.LaPaz,
		kernel.Frozen, frozen, 6800,
		order.Authorized,
		time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		return nil, err
	}

	second, err := order.RestoreOrder(
		"ORD-002", "Agro Sur",
		kernel.LaPaz, kernel.LosCabos,
		kernel.Fresh, fresh, 3200,
		order.InRoute,
		time.Date(2024, time.May, 11, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		return nil, err
	}

	return []*order.Order{first, second}, nil
}
