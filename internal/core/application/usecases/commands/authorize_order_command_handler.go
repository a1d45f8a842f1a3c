package commands

import (
	"context"
	"errors"
	"fmt"

	"cargofresh/internal/core/domain/model/order"
	"cargofresh/internal/pkg/errs"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("order is not pending authorization")
)

// AuthorizeOrderCommandHandler moves an order from PendingAuthorization to Authorized.
//
// Unknown IDs are reported as ErrOrderNotFound and orders in any other status as
// ErrOrderNotPending. In both cases nothing is written.
//
// Example:
//
//	cmd, _ := NewAuthorizeOrderCommand("ORD-003")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotPending):
//	    // already authorized or in route
//	case err != nil:
//	    return err
//	}
type AuthorizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAuthorizeOrderCommandHandler creates a handler for order authorization.
func NewAuthorizeOrderCommandHandler(uowFactory OrderUoWFactory) AuthorizeOrderCommandHandler {
	return AuthorizeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the order named by cmd.
func (h *AuthorizeOrderCommandHandler) Handle(ctx context.Context, cmd AuthorizeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, cmd.OrderID())
		}
		return err
	}

	if o.Status() != order.PendingAuthorization {
		return fmt.Errorf("%w: %s is %s", ErrOrderNotPending, o.ID(), o.Status())
	}

	if err = o.Authorize(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
