package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/theme"
	"github.com/nfrund/dashboard/internal/viewport"
)

// Context keys set by Preferences.
const (
	ThemeStoreKey = "theme.store"
	ViewportKey   = "viewport.detector"
)

// PreferencesSession is the session holding per-client UI preferences.
const PreferencesSession = "preferences"

// viewportWidthKey stores the last width reported by the browser.
const viewportWidthKey = "viewport-width"

// HeaderPrefersColorScheme is the client hint for the OS colour scheme.
const HeaderPrefersColorScheme = "Sec-CH-Prefers-Color-Scheme"

// PreferencesConfig configures the Preferences middleware.
type PreferencesConfig struct {
	ThemeKey     string
	DefaultTheme theme.Theme
	Breakpoint   int
}

// Preferences loads the client's theme and viewport state before the
// handler runs and makes them available through ThemeStore and Viewport.
// It requires the session middleware.
func Preferences(cfg PreferencesConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := FromContext(c.Request().Context())

			store := theme.NewStore(theme.NewSessionPersister(c, PreferencesSession, cfg.ThemeKey), cfg.DefaultTheme)
			if err := store.Init(c.Request().Context()); err != nil {
				log.Warn("Theme preference unreadable, using default", "error", err, "default", cfg.DefaultTheme)
			}
			c.Set(ThemeStoreKey, store)

			detector := viewport.NewDetector(cfg.Breakpoint)
			if w, ok := loadViewportWidth(c); ok {
				detector.SetWidth(w)
			}
			if w, ok := viewport.FromRequest(c.Request()); ok {
				detector.SetWidth(w)
			}
			c.Set(ViewportKey, detector)

			h := c.Response().Header()
			h.Set("Accept-CH", strings.Join([]string{viewport.HeaderViewportWidth, HeaderPrefersColorScheme}, ", "))
			h.Add(echo.HeaderVary, viewport.HeaderViewportWidth)
			h.Add(echo.HeaderVary, HeaderPrefersColorScheme)

			return next(c)
		}
	}
}

// ThemeStore returns the request's theme store. Outside the Preferences
// middleware a fresh in-memory store on the default theme is returned.
func ThemeStore(c echo.Context) *theme.Store {
	if s, ok := c.Get(ThemeStoreKey).(*theme.Store); ok {
		return s
	}
	return theme.NewStore(theme.NewMemoryPersister(""), theme.Default)
}

// Viewport returns the request's breakpoint detector.
func Viewport(c echo.Context) *viewport.Detector {
	if d, ok := c.Get(ViewportKey).(*viewport.Detector); ok {
		return d
	}
	return viewport.NewDetector(viewport.DefaultBreakpoint)
}

// PrefersDark reads the colour scheme client hint. Without a hint the
// application's dark default applies.
func PrefersDark(r *http.Request) bool {
	hint := strings.Trim(strings.TrimSpace(r.Header.Get(HeaderPrefersColorScheme)), `"`)
	return !strings.EqualFold(hint, "light")
}

func loadViewportWidth(c echo.Context) (int, bool) {
	sess, err := session.Get(PreferencesSession, c)
	if err != nil {
		return 0, false
	}
	w, ok := sess.Values[viewportWidthKey].(int)
	return w, ok && w > 0
}

// SaveViewportWidth persists the reported width for later renders.
func SaveViewportWidth(c echo.Context, width int) error {
	sess, err := session.Get(PreferencesSession, c)
	if err != nil {
		return fmt.Errorf("open session %q: %w", PreferencesSession, err)
	}
	sess.Values[viewportWidthKey] = width
	return sess.Save(c.Request(), c.Response())
}
