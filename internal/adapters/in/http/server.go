package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"cargofresh/internal/core/application/session"
	"cargofresh/internal/core/application/usecases/assistant"
	"cargofresh/internal/core/application/usecases/queries"
	"cargofresh/internal/core/domain/model/order"
	"cargofresh/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server turns HTTP requests into visitor events, use-case calls and JSON views.
type Server struct {
	machine   *session.Machine
	sessions  *session.Store
	estimator session.Estimator

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	summaryHandler    queries.GetDashboardSummaryQueryHandler
	chatHandler       assistant.AskCargoBotQueryHandler
	packagingHandler  assistant.AdvisePackagingQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(
	machine *session.Machine,
	sessions *session.Store,
	estimator session.Estimator,
	listOrdersHandler queries.ListOrdersQueryHandler,
	summaryHandler queries.GetDashboardSummaryQueryHandler,
	chatHandler assistant.AskCargoBotQueryHandler,
	packagingHandler assistant.AdvisePackagingQueryHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		machine:           machine,
		sessions:          sessions,
		estimator:         estimator,
		listOrdersHandler: listOrdersHandler,
		summaryHandler:    summaryHandler,
		chatHandler:       chatHandler,
		packagingHandler:  packagingHandler,
		logger:            logger.With("component", "http-server"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetState handles GET /api/v1/state.
func (s *Server) GetState(ctx echo.Context) error {
	state, err := s.sessions.State(sessionID(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondState(ctx, state)
}

// PatchQuoteForm handles PATCH /api/v1/quote/form.
func (s *Server) PatchQuoteForm(ctx echo.Context) error {
	var patch FormPatch
	if err := ctx.Bind(&patch); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return s.dispatch(ctx, patch.events()...)
}

// CalculateEstimate handles POST /api/v1/quote/estimate.
func (s *Server) CalculateEstimate(ctx echo.Context) error {
	return s.dispatch(ctx, session.CalculateEstimate{})
}

// BuyNow handles POST /api/v1/quote/buy.
func (s *Server) BuyNow(ctx echo.Context) error {
	return s.dispatch(ctx, session.BuyNow{})
}

// CreateEstimate handles POST /api/v1/estimates - prices without touching the visitor state.
func (s *Server) CreateEstimate(ctx echo.Context) error {
	var request EstimateRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	estimate, err := s.estimator.EstimateRaw(request.CargoType, string(request.Weight), request.LastMile)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newEstimate(estimate))
}

// RequestClientArea handles POST /api/v1/navigation/client-area.
func (s *Server) RequestClientArea(ctx echo.Context) error {
	return s.dispatch(ctx, session.RequestClientArea{})
}

// Login handles POST /api/v1/session/login.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := session.ParseRole(request.Role)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.dispatch(ctx, session.Login{Role: role})
}

// CancelLogin handles POST /api/v1/session/cancel.
func (s *Server) CancelLogin(ctx echo.Context) error {
	return s.dispatch(ctx, session.CancelLogin{})
}

// Logout handles POST /api/v1/session/logout.
func (s *Server) Logout(ctx echo.Context) error {
	return s.dispatch(ctx, session.Logout{})
}

// ConfirmPendingQuote handles POST /api/v1/pending-quote/confirm.
func (s *Server) ConfirmPendingQuote(ctx echo.Context) error {
	return s.dispatch(ctx, session.ConfirmPendingQuote{})
}

// DiscardPendingQuote handles POST /api/v1/pending-quote/discard.
func (s *Server) DiscardPendingQuote(ctx echo.Context) error {
	return s.dispatch(ctx, session.DiscardPendingQuote{})
}

// AuthorizeOrder handles POST /api/v1/orders/{orderId}/authorize.
func (s *Server) AuthorizeOrder(ctx echo.Context) error {
	var orderID string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter orderId: "+err.Error())
	}

	id, err := order.ParseID(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.dispatch(ctx, session.AuthorizeOrder{ID: id})
}

// Chat handles POST /api/v1/assistant/chat.
func (s *Server) Chat(ctx echo.Context) error {
	var request ChatRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := assistant.NewAskCargoBotQuery(request.Message)
	if err != nil {
		return s.fail(ctx, err)
	}

	reply, err := s.chatHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ChatResponse{Outcome: reply.Outcome.String(), Reply: reply.Text})
}

// AdvisePackaging handles POST /api/v1/assistant/packaging.
func (s *Server) AdvisePackaging(ctx echo.Context) error {
	var request PackagingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := assistant.NewAdvisePackagingQuery(request.Product)
	if err != nil {
		return s.fail(ctx, err)
	}

	advice, err := s.packagingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPackagingResponse(advice))
}

// dispatch applies events in order to the visitor state. If one fails none is kept.
func (s *Server) dispatch(ctx echo.Context, events ...session.Event) error {
	reqCtx := ctx.Request().Context()

	state, err := s.sessions.Update(sessionID(ctx), func(state session.State) (session.State, error) {
		for _, event := range events {
			next, err := s.machine.Reduce(reqCtx, state, event)
			if err != nil {
				return state, err
			}
			state = next
		}
		return state, nil
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondState(ctx, state)
}

func (s *Server) respondState(ctx echo.Context, state session.State) error {
	response := newState(state)

	if state.View == session.ClientDashboard || state.View == session.AdminDashboard {
		if err := s.attachOrders(ctx.Request().Context(), state.View, &response); err != nil {
			return s.fail(ctx, err)
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) attachOrders(ctx context.Context, view session.View, response *State) error {
	orders, err := s.listOrdersHandler.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return err
	}
	response.Orders = newOrders(orders)

	if view != session.ClientDashboard {
		return nil
	}

	summary, err := s.summaryHandler.Handle(ctx, queries.NewGetDashboardSummaryQuery())
	if err != nil {
		return err
	}
	response.Summary = &Summary{
		Active:               summary.Active,
		PendingAuthorization: summary.PendingAuthorization,
	}
	return nil
}

// fail maps an error to its status code: validation 400, wrong view 409, anything else 500.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errs.IsValidation(err):
		return badRequest(ctx, err.Error())
	case errors.Is(err, session.ErrEventNotAllowed):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	s.logger.ErrorContext(ctx.Request().Context(), "request failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err)
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
