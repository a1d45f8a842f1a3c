package commands

import (
	"errors"

	"cargofresh/internal/core/domain/model/order"
	"cargofresh/internal/pkg/guard"
)

var (
	ErrAuthorizeOrderCommandIsNotConstructed = errors.New(
		"AuthorizeOrderCommand must be created via NewAuthorizeOrderCommand constructor",
	)
)

// AuthorizeOrderCommand approves an order awaiting authorization.
type AuthorizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewAuthorizeOrderCommand creates a command for the given order ID.
func NewAuthorizeOrderCommand(orderID order.ID) (AuthorizeOrderCommand, error) {
	cmd := AuthorizeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AuthorizeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthorizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrAuthorizeOrderCommandIsNotConstructed)
}

// OrderID returns the order to authorize.
func (c AuthorizeOrderCommand) OrderID() order.ID {
	return c.orderID
}

func (c *AuthorizeOrderCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
