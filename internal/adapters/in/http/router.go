package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving s: recovery, request logging,
// visitor sessions and contract validation, then every route of the API.
func NewRouter(ctx context.Context, s *Server, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "http")))

	e.GET("/health", s.GetHealth)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1", SessionCookie(), validator)
	v1.GET("/state", s.GetState)
	v1.PATCH("/quote/form", s.PatchQuoteForm)
	v1.POST("/quote/estimate", s.CalculateEstimate)
	v1.POST("/quote/buy", s.BuyNow)
	v1.POST("/estimates", s.CreateEstimate)
	v1.POST("/navigation/client-area", s.RequestClientArea)
	v1.POST("/session/login", s.Login)
	v1.POST("/session/cancel", s.CancelLogin)
	v1.POST("/session/logout", s.Logout)
	v1.POST("/pending-quote/confirm", s.ConfirmPendingQuote)
	v1.POST("/pending-quote/discard", s.DiscardPendingQuote)
	v1.POST("/orders/:orderId/authorize", s.AuthorizeOrder)
	v1.POST("/assistant/chat", s.Chat)
	v1.POST("/assistant/packaging", s.AdvisePackaging)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.Round(time.Microsecond),
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
