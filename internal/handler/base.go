package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/validation"
)

// Handler is the base handler type that holds shared application dependencies.
//
// Concrete handlers (ItemHandler, HealthHandler, ...) embed it to reach
// config, logger and redis through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it receives a bound and validated
// request and returns a response or an error.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful result is written and which
// New Relic attributes it adds.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error

	// GetOperation names the handler type in structured logs.
	GetOperation() string

	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// handleRequest is the shared execution pipeline for all handlers:
// binding and validation, structured logging, New Relic attributes and
// durations, then response writing.
func handleRequest[Req validation.Validatable](
	h Handler,
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	// Set by the nrecho middleware; nil when New Relic is disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("path", c.Request().URL.Path).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		// Client mistakes are not server failures.
		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)
	totalDuration := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	event := logger.Debug()
	if threshold := h.slowRequestThreshold(); threshold > 0 && totalDuration > threshold {
		event = logger.Warn().Dur("threshold", threshold)
	}
	event.
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

func (h Handler) slowRequestThreshold() time.Duration {
	if h.server == nil || h.server.Config == nil || h.server.Config.Observability == nil {
		return 0
	}
	return h.server.Config.Observability.Logging.SlowRequestThreshold
}

// Handle wraps a typed handler with binding, validation, logging and
// tracing, and writes its result as JSON with the given status.
//
// A fresh request value is allocated for every call:
//
//	g.POST("/items", handler.Handle(h.Item, h.Item.CreateItem, http.StatusOK))
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](
	h Handler,
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(h, c, req, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
