package commands

import (
	"context"
	"time"

	"cargofresh/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places orders from confirmed quotes.
// New orders start in PendingAuthorization with the quoted price.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// now stamps the creation date; nil means time.Now.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CreateOrderCommandHandler {
	if now == nil {
		now = time.Now
	}

	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle reserves an order ID, builds the order and commits it.
// Returns the ID of the stored order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.ID, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return "", err
	}

	newOrder, err := order.NewOrder(id, cmd.Client(), cmd.PendingQuote(), h.now())
	if err != nil {
		return "", err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return id, nil
}
