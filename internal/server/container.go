package server

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/dashboard/internal/config"
	"github.com/nfrund/dashboard/internal/events"
	"github.com/nfrund/dashboard/internal/handlers"
	"github.com/nfrund/dashboard/internal/middleware"
	"github.com/nfrund/dashboard/internal/pubsub"
	"github.com/nfrund/dashboard/internal/rendering"
	"github.com/nfrund/dashboard/web"
	"github.com/samber/do/v2"
)

// eventBus adapts the watermill bridge to the container's shutdown hook.
type eventBus struct {
	*pubsub.WatermillBridge
}

// Shutdown closes the bus and waits for its subscribers.
func (b *eventBus) Shutdown() error {
	return b.Close()
}

// Package provides every service the HTTP server needs. The container must
// already hold a *config.Config and a *slog.Logger.
var Package = do.Package(
	do.Lazy(newEventBus),
	do.Lazy(newRenderer),
	do.Lazy(newSessionStore),
	do.Lazy(newView),
	do.Lazy(newPageHandler),
	do.Lazy(newAuthHandler),
	do.Lazy(newThemeHandler),
	do.Lazy(newViewportHandler),
	do.Lazy(newEcho),
)

func newEventBus(i do.Injector) (*eventBus, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return &eventBus{pubsub.NewWatermillBridge(pubsub.Config{
		Debug:             cfg.IsDev() && cfg.LogLevel == "debug",
		BlockUntilHandled: true,
	})}, nil
}

func newRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func newSessionStore(i do.Injector) (sessions.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
		Secure:   !cfg.IsDev(),
		SameSite: http.SameSiteLaxMode,
	}
	return store, nil
}

func newView(i do.Injector) (*handlers.View, error) {
	return handlers.NewView(do.MustInvoke[*rendering.UniversalRenderer](i)), nil
}

func newPageHandler(i do.Injector) (*handlers.PageHandler, error) {
	return handlers.NewPageHandler(do.MustInvoke[*handlers.View](i)), nil
}

func newAuthHandler(i do.Injector) (*handlers.AuthHandler, error) {
	bus := do.MustInvoke[*eventBus](i)
	return handlers.NewAuthHandler(do.MustInvoke[*handlers.View](i), events.NewFormSubmitter(bus)), nil
}

func newThemeHandler(i do.Injector) (*handlers.ThemeHandler, error) {
	return handlers.NewThemeHandler(do.MustInvoke[*eventBus](i)), nil
}

func newViewportHandler(i do.Injector) (*handlers.ViewportHandler, error) {
	return handlers.NewViewportHandler(), nil
}

func newEcho(i do.Injector) (*echo.Echo, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDev()
	e.Validator = handlers.NewValidator()
	e.Renderer = do.MustInvoke[*rendering.UniversalRenderer](i)
	setupErrorHandling(e)

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger)
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			middleware.FromContext(c.Request().Context()).Debug("Request handled",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(echomw.Recover())

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	e.Use(session.Middleware(do.MustInvoke[sessions.Store](i)))
	e.Use(middleware.Preferences(middleware.PreferencesConfig{
		ThemeKey:     cfg.ThemeKey,
		DefaultTheme: cfg.DefaultTheme(),
		Breakpoint:   cfg.ViewportBreakpoint,
	}))

	registerRoutes(e, routeHandlers{
		pages:    do.MustInvoke[*handlers.PageHandler](i),
		auth:     do.MustInvoke[*handlers.AuthHandler](i),
		theme:    do.MustInvoke[*handlers.ThemeHandler](i),
		viewport: do.MustInvoke[*handlers.ViewportHandler](i),
	}, middleware.RateLimiter(cfg.RateLimitPerMinute))

	logger.Debug("HTTP server configured", "addr", cfg.Addr, "env", cfg.AppEnv)
	return e, nil
}
