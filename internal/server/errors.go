package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/middleware"
)

// setupErrorHandling logs unexpected errors with a stack trace. HTTP errors
// raised on purpose go straight to echo's default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			err = echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
