package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/events"
	"github.com/nfrund/dashboard/internal/middleware"
	"github.com/nfrund/dashboard/internal/pubsub"
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/nfrund/dashboard/internal/theme"
	"github.com/nfrund/dashboard/internal/view"
)

// MsgThemeNotSaved is flashed when the preference could not be persisted.
const MsgThemeNotSaved = "Theme preference could not be saved"

// ThemeSavedMessage is flashed after a plain form post changed the theme.
func ThemeSavedMessage(t theme.Theme) string {
	return "Theme set to " + t.Label()
}

// ThemeHandler changes the client's theme preference.
type ThemeHandler struct {
	pub pubsub.Publisher
}

// NewThemeHandler creates a ThemeHandler announcing changes on pub.
func NewThemeHandler(pub pubsub.Publisher) *ThemeHandler {
	return &ThemeHandler{pub: pub}
}

type themeChange func(ctx context.Context, s *theme.Store) (theme.Theme, error)

// Set stores an explicit theme (POST /theme).
func (h *ThemeHandler) Set(c echo.Context) error {
	var req ThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed theme request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "theme is required")
	}
	t, err := theme.Parse(req.Theme)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.apply(c, req.ReturnTo, func(ctx context.Context, s *theme.Store) (theme.Theme, error) {
		return t, s.Set(ctx, t)
	})
}

// Toggle flips between light and dark (POST /theme/toggle). The scheme the
// browser reports in "prefers" wins over the client hint.
func (h *ThemeHandler) Toggle(c echo.Context) error {
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed theme request")
	}
	prefersDark := middleware.PrefersDark(c.Request())
	if scheme, err := theme.Parse(req.Prefers); err == nil && scheme != theme.System {
		prefersDark = scheme == theme.Dark
	}
	return h.apply(c, req.ReturnTo, func(ctx context.Context, s *theme.Store) (theme.Theme, error) {
		return s.Toggle(ctx, prefersDark)
	})
}

func (h *ThemeHandler) apply(c echo.Context, returnTo string, change themeChange) error {
	ctx := c.Request().Context()
	log := middleware.FromContext(ctx)
	store := middleware.ThemeStore(c)

	previous := store.Current()
	next, err := change(ctx, store)
	switch {
	case err != nil:
		log.Warn("Theme preference not saved", "error", err, "theme", next)
		view.SetFlashError(c, MsgThemeNotSaved)
	case next != previous:
		if err := events.PublishThemeChanged(ctx, h.pub, previous.String(), next.String()); err != nil {
			log.Error("Failed to publish theme change", "error", err)
		}
		if !isHTMX(c) {
			view.SetFlashSuccess(c, ThemeSavedMessage(next))
		}
	}

	if isHTMX(c) {
		c.Response().Header().Set("HX-Refresh", "true")
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, SafeReturnTo(returnTo))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// SafeReturnTo accepts only local absolute paths and falls back to the
// dashboard home.
func SafeReturnTo(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.ContainsAny(raw, "\\\r\n") {
		return routes.HomePath
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return routes.HomePath
	}
	return u.RequestURI()
}
