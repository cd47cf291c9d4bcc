package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/nfrund/dashboard/web/pages"
)

// PageHandler serves the static pages of the route table.
type PageHandler struct {
	view *View
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(v *View) *PageHandler {
	return &PageHandler{view: v}
}

// Show returns the GET handler for entry.
func (h *PageHandler) Show(entry routes.Entry) echo.HandlerFunc {
	return func(c echo.Context) error {
		content := pages.Content(entry.Page, pages.FormData{Action: entry.Path})
		return h.view.Render(c, http.StatusOK, entry, content)
	}
}

// Root sends the root path to the dashboard home.
func (h *PageHandler) Root(c echo.Context) error {
	res := routes.Resolve(c.Request().URL.Path)
	if !res.Redirect() {
		return echo.ErrNotFound
	}
	return c.Redirect(http.StatusFound, res.RedirectTo)
}
