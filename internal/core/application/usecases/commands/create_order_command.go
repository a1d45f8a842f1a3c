package commands

import (
	"errors"
	"strings"

	"cargofresh/internal/core/domain/model/quote"
	"cargofresh/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientIsRequired = errors.New("client is required")
)

// CreateOrderCommand turns a confirmed pending quote into an order for a client.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Cliente Demo S.A.", pending)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s awaits authorization", id)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	client       string
	pendingQuote quote.PendingQuote

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Validates that the client is named and the pending quote was constructed.
func NewCreateOrderCommand(client string, pendingQuote quote.PendingQuote) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClient(client),
		cmd.setPendingQuote(pendingQuote),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Client returns the display name the order is placed for.
func (c CreateOrderCommand) Client() string {
	return c.client
}

// PendingQuote returns the quote being confirmed.
func (c CreateOrderCommand) PendingQuote() quote.PendingQuote {
	return c.pendingQuote
}

func (c *CreateOrderCommand) setClient(client string) error {
	client = strings.TrimSpace(client)
	if client == "" {
		return ErrClientIsRequired
	}

	c.client = client
	return nil
}

func (c *CreateOrderCommand) setPendingQuote(pendingQuote quote.PendingQuote) error {
	if err := pendingQuote.Validate(); err != nil {
		return err
	}

	c.pendingQuote = pendingQuote
	return nil
}
