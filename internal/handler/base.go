package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/go-signup/internal/errs"
	"github.com/deppfellow/go-signup/internal/middleware"
	"github.com/deppfellow/go-signup/internal/server"
	"github.com/deppfellow/go-signup/internal/validation"
)

// Handler holds the dependencies every concrete handler shares.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Response is the outcome of a handler: a status code and an optional
// body. A nil Body is written without content.
type Response struct {
	StatusCode int
	Body       any
}

// HandlerFunc is a transport-free endpoint. It receives the bound request
// and always returns a Response; failures are expressed as error bodies.
type HandlerFunc[Req any] func(ctx context.Context, req Req) *Response

func errorResponse(err *errs.HTTPError) *Response {
	return &Response{StatusCode: err.Status, Body: err}
}

// ResponseHandler writes a Response to echo.
type ResponseHandler interface {
	Handle(c echo.Context, body any) error

	// GetOperation names the response kind in logs.
	GetOperation() string
}

type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, body any) error {
	return c.JSON(h.status, body)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, _ any) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

func responseHandlerFor(resp *Response) ResponseHandler {
	if resp.Body == nil {
		return NoContentResponseHandler{status: resp.StatusCode}
	}
	return JSONResponseHandler{status: resp.StatusCode}
}

// handleRequest binds req, runs handler and writes its Response, logging
// and tracing each phase.
//
// Binding failures are returned to echo so the global error handler
// answers them. Responses from the handler, error bodies included, are
// written here.
func handleRequest[Req any](c echo.Context, req Req, handler HandlerFunc[Req]) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("method", c.Request().Method).
		Str("route", route).
		Logger()

	logger.Info().Msg("handling request")

	bindStart := time.Now()
	if err := validation.Bind(c, req); err != nil {
		bindDuration := time.Since(bindStart)

		logger.Warn().
			Err(err).
			Dur("bind_duration", bindDuration).
			Msg("request binding failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("bind.status", "failed")
			txn.AddAttribute("bind.duration_ms", bindDuration.Milliseconds())
		}

		return err
	}

	bindDuration := time.Since(bindStart)
	if txn != nil {
		txn.AddAttribute("bind.status", "success")
		txn.AddAttribute("bind.duration_ms", bindDuration.Milliseconds())
	}

	handlerStart := time.Now()
	resp := handler(c.Request().Context(), req)
	handlerDuration := time.Since(handlerStart)

	if resp == nil {
		resp = errorResponse(errs.NewInternalServerError())
	}

	responseHandler := responseHandlerFor(resp)
	totalDuration := time.Since(start)

	if txn != nil {
		status := "success"
		if resp.StatusCode >= 400 {
			status = "error"
		}
		txn.AddAttribute("handler.status", status)
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())

		if httpErr, ok := resp.Body.(*errs.HTTPError); ok {
			txn.AddAttribute("error.code", httpErr.Code)
		}
	}

	event := logger.Info()
	switch {
	case resp.StatusCode >= 500:
		event = logger.Error()
	case resp.StatusCode >= 400:
		event = logger.Warn()
	}

	event.
		Str("operation", responseHandler.GetOperation()).
		Int("status", resp.StatusCode).
		Dur("bind_duration", bindDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed")

	return responseHandler.Handle(c, resp.Body)
}

// HandleResponse adapts a HandlerFunc to echo. A fresh Req is allocated
// for every request.
//
//	router.POST("/signup", handler.HandleResponse[SignupRequest](h, fn))
func HandleResponse[Req any](h Handler, handler HandlerFunc[*Req]) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, new(Req), handler)
	}
}
