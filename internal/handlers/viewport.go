package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/middleware"
)

// ViewportHandler receives the width the browser reports.
type ViewportHandler struct{}

// NewViewportHandler creates a new ViewportHandler.
func NewViewportHandler() *ViewportHandler {
	return &ViewportHandler{}
}

// Report stores the width (POST /viewport). The client is told to refresh
// only when the width crossed the breakpoint.
func (h *ViewportHandler) Report(c echo.Context) error {
	var req ViewportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "width must be a number")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "width must be a positive number of pixels")
	}

	detector := middleware.Viewport(c)
	changed := detector.SetWidth(req.Width)
	if err := middleware.SaveViewportWidth(c, req.Width); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Viewport width not saved", "error", err)
	}

	if changed {
		c.Response().Header().Set("HX-Refresh", "true")
	}
	return c.NoContent(http.StatusNoContent)
}
