package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cargofresh/internal/core/application/usecases/commands"
	"cargofresh/internal/core/domain/model/order"
	"cargofresh/internal/core/domain/model/quote"
	"cargofresh/internal/pkg/errs"
)

var (
	// ErrEventNotAllowed is returned for events the current view does not accept.
	ErrEventNotAllowed = errors.New("event not allowed in current view")
	// ErrUnknownEvent is returned for a nil or foreign Event.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrEstimateRequired is returned by BuyNow before an estimate was calculated.
	ErrEstimateRequired = errs.NewValueIsRequiredError("estimate")
)

// Estimator prices raw form input.
type Estimator interface {
	EstimateRaw(cargoType, weight string, lastMile bool) (quote.Estimate, error)
}

// OrderCreator places an order from a confirmed quote.
type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (order.ID, error)
}

// OrderAuthorizer approves a pending order.
type OrderAuthorizer interface {
	Handle(ctx context.Context, cmd commands.AuthorizeOrderCommand) error
}

// Machine applies visitor events to visitor states.
type Machine struct {
	estimator  Estimator
	orders     OrderCreator
	authorizer OrderAuthorizer
	logger     *slog.Logger
}

// NewMachine creates a machine. A nil logger means slog.Default().
func NewMachine(estimator Estimator, orders OrderCreator, authorizer OrderAuthorizer, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Machine{
		estimator:  estimator,
		orders:     orders,
		authorizer: authorizer,
		logger:     logger.With("component", "session-machine"),
	}
}

// Reduce returns the state that follows state after event.
// On error the returned state is state itself.
func (m *Machine) Reduce(ctx context.Context, state State, event Event) (State, error) {
	next, err := m.reduce(ctx, state, event)
	if err != nil {
		m.logger.DebugContext(ctx, "event rejected",
			"event", EventName(event),
			"view", state.View.String(),
			"error", err)
		return state, err
	}

	if next.View != state.View {
		m.logger.InfoContext(ctx, "view changed",
			"event", EventName(event),
			"from", state.View.String(),
			"to", next.View.String())
	}

	return next, nil
}

func (m *Machine) reduce(ctx context.Context, s State, event Event) (State, error) {
	if err := ctx.Err(); err != nil {
		return s, err
	}

	switch e := event.(type) {
	case EditOrigin:
		if s.View != Landing {
			return s, notAllowed(s, e)
		}
		s.Form.Origin = e.Value
		return s.withoutEstimate(), nil

	case EditDestination:
		if s.View != Landing {
			return s, notAllowed(s, e)
		}
		s.Form.Destination = e.Value
		return s.withoutEstimate(), nil

	case EditCargoType:
		if s.View != Landing {
			return s, notAllowed(s, e)
		}
		s.Form.CargoType = e.Value
		return s.withoutEstimate(), nil

	case EditWeight:
		if s.View != Landing {
			return s, notAllowed(s, e)
		}
		s.Form.Weight = e.Value
		return s.withoutEstimate(), nil

	case EditLastMile:
		if s.View != Landing {
			return s, notAllowed(s, e)
		}
		s.Form.LastMile = e.Value
		return s.withoutEstimate(), nil

	case CalculateEstimate:
		return m.calculateEstimate(s, e)

	case RequestClientArea:
		if s.View != Landing {
			return s, notAllowed(s, e)
		}
		s.View = LoginPrompt
		return s, nil

	case BuyNow:
		return m.buyNow(s, e)

	case Login:
		if s.View != LoginPrompt {
			return s, notAllowed(s, e)
		}
		if err := e.Role.Validate(); err != nil {
			return s, err
		}
		s.Session = Session{
			Authenticated: true,
			Role:          e.Role,
			DisplayName:   e.Role.displayName(),
		}
		s.View = e.Role.dashboard()
		return s, nil

	case CancelLogin:
		if s.View != LoginPrompt {
			return s, notAllowed(s, e)
		}
		s.View = Landing
		return s, nil

	case ConfirmPendingQuote:
		return m.confirmPendingQuote(ctx, s, e)

	case DiscardPendingQuote:
		if s.View != ClientDashboard {
			return s, notAllowed(s, e)
		}
		s.PendingQuote = nil
		return s, nil

	case Logout:
		if s.View != ClientDashboard && s.View != AdminDashboard {
			return s, notAllowed(s, e)
		}
		s.Session = Session{}
		s.PendingQuote = nil
		s.View = Landing
		return s, nil

	case AuthorizeOrder:
		return m.authorizeOrder(ctx, s, e)
	}

	return s, fmt.Errorf("%w: %T", ErrUnknownEvent, event)
}

func (m *Machine) calculateEstimate(s State, e CalculateEstimate) (State, error) {
	if s.View != Landing {
		return s, notAllowed(s, e)
	}

	estimate, err := m.estimator.EstimateRaw(s.Form.CargoType, s.Form.Weight, s.Form.LastMile)
	if err != nil {
		return s, err
	}

	s.Estimate = &estimate
	return s, nil
}

// buyNow needs an estimate of the current form; any edit clears it.
func (m *Machine) buyNow(s State, e BuyNow) (State, error) {
	if s.View != Landing {
		return s, notAllowed(s, e)
	}
	if s.Estimate == nil {
		return s, ErrEstimateRequired
	}

	request, err := s.Form.Request()
	if err != nil {
		return s, err
	}

	pending, err := quote.NewPendingQuote(request, *s.Estimate)
	if err != nil {
		return s, err
	}

	s.PendingQuote = &pending
	s.View = LoginPrompt
	return s, nil
}

func (m *Machine) confirmPendingQuote(ctx context.Context, s State, e ConfirmPendingQuote) (State, error) {
	if s.View != ClientDashboard {
		return s, notAllowed(s, e)
	}
	if s.PendingQuote == nil {
		m.logger.DebugContext(ctx, "nothing to confirm")
		return s, nil
	}

	cmd, err := commands.NewCreateOrderCommand(s.Session.DisplayName, *s.PendingQuote)
	if err != nil {
		return s, err
	}

	id, err := m.orders.Handle(ctx, cmd)
	if err != nil {
		return s, err
	}

	m.logger.InfoContext(ctx, "order placed",
		"order_id", id.String(),
		"client", s.Session.DisplayName,
		"price", s.PendingQuote.Price())

	s.PendingQuote = nil
	return s, nil
}

// authorizeOrder ignores unknown orders and orders that are no longer pending.
func (m *Machine) authorizeOrder(ctx context.Context, s State, e AuthorizeOrder) (State, error) {
	if s.View != AdminDashboard {
		return s, notAllowed(s, e)
	}

	cmd, err := commands.NewAuthorizeOrderCommand(e.ID)
	if err != nil {
		return s, err
	}

	err = m.authorizer.Handle(ctx, cmd)
	switch {
	case err == nil:
		m.logger.InfoContext(ctx, "order authorized", "order_id", e.ID.String())
	case errors.Is(err, commands.ErrOrderNotFound), errors.Is(err, commands.ErrOrderNotPending):
		m.logger.DebugContext(ctx, "authorization skipped", "order_id", e.ID.String(), "reason", err)
	default:
		return s, err
	}

	return s, nil
}

func notAllowed(s State, e Event) error {
	return fmt.Errorf("%w: %s on %s", ErrEventNotAllowed, EventName(e), s.View)
}
