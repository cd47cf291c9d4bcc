package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/handlers"
	"github.com/nfrund/dashboard/internal/routes"
)

type routeHandlers struct {
	pages    *handlers.PageHandler
	auth     *handlers.AuthHandler
	theme    *handlers.ThemeHandler
	viewport *handlers.ViewportHandler
}

// registerRoutes sets up all the application routes.
func registerRoutes(e *echo.Echo, h routeHandlers, rateLimiter echo.MiddlewareFunc) {
	e.GET(routes.RootPath, h.pages.Root)

	for _, entry := range routes.Table() {
		switch entry.Page {
		case routes.PageLogin:
			e.GET(entry.Path, h.auth.LoginGet)
			e.POST(entry.Path, h.auth.LoginPost, rateLimiter)
		case routes.PageSignup:
			e.GET(entry.Path, h.auth.SignupGet)
			e.POST(entry.Path, h.auth.SignupPost, rateLimiter)
		case routes.PageForgotPassword:
			e.GET(entry.Path, h.auth.ForgotPasswordGet)
			e.POST(entry.Path, h.auth.ForgotPasswordPost, rateLimiter)
		default:
			e.GET(entry.Path, h.pages.Show(entry))
		}
	}

	e.POST("/theme", h.theme.Set)
	e.POST("/theme/toggle", h.theme.Toggle)
	e.POST("/viewport", h.viewport.Report)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
