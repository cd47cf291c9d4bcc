package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/forms"
	"github.com/nfrund/dashboard/internal/middleware"
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/nfrund/dashboard/web/pages"
)

// AuthHandler serves the sign-in, sign-up and password reset forms. A valid
// submission is handed to the submitter and the page is drawn again; nothing
// is authenticated and nobody is redirected.
type AuthHandler struct {
	view      *View
	submitter forms.Submitter
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(v *View, submitter forms.Submitter) *AuthHandler {
	return &AuthHandler{view: v, submitter: submitter}
}

func (h *AuthHandler) show(c echo.Context, page routes.Page) error {
	entry, _ := routes.Lookup(page)
	return h.view.Render(c, http.StatusOK, entry, pages.Content(page, pages.FormData{Action: entry.Path}))
}

// submit binds the posted fields into T, runs the form and redraws the page.
// Invalid input is answered with 422 and per-field messages.
func submit[T any](h *AuthHandler, c echo.Context, page routes.Page, kind forms.Kind) error {
	entry, _ := routes.Lookup(page)

	var input T
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form submission")
	}

	form := forms.New(kind, input)
	if err := form.Submit(c.Request().Context(), h.submitter); err != nil {
		return err
	}

	status := http.StatusOK
	if form.State() == forms.Invalid {
		status = http.StatusUnprocessableEntity
		middleware.FromContext(c.Request().Context()).Debug("Form rejected",
			"form", kind.String(), "fields", len(form.Errors()))
	}

	data := pages.FormData{Action: entry.Path, Values: form.Values(), Errors: form.Errors()}
	return h.view.Render(c, status, entry, pages.Content(page, data))
}

// LoginGet renders the sign-in form (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error { return h.show(c, routes.PageLogin) }

// LoginPost handles the sign-in form (POST /login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	return submit[forms.LoginInput](h, c, routes.PageLogin, forms.KindLogin)
}

// SignupGet renders the account creation form (GET /signup).
func (h *AuthHandler) SignupGet(c echo.Context) error { return h.show(c, routes.PageSignup) }

// SignupPost handles the account creation form (POST /signup).
func (h *AuthHandler) SignupPost(c echo.Context) error {
	return submit[forms.SignupInput](h, c, routes.PageSignup, forms.KindSignup)
}

// ForgotPasswordGet renders the reset request form (GET /forgot-password).
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	return h.show(c, routes.PageForgotPassword)
}

// ForgotPasswordPost handles the reset request form (POST /forgot-password).
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	return submit[forms.ForgotPasswordInput](h, c, routes.PageForgotPassword, forms.KindForgotPassword)
}
