package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/dashboard/internal/forms"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a CustomValidator sharing the form schemas' rules.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: forms.Validator()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ThemeRequest is the body of POST /theme.
type ThemeRequest struct {
	Theme    string `form:"theme" validate:"required"`
	ReturnTo string `form:"return_to"`
}

// ToggleRequest is the body of POST /theme/toggle.
type ToggleRequest struct {
	ReturnTo string `form:"return_to"`
	// Prefers is the color scheme the browser resolved, "light" or "dark".
	Prefers string `form:"prefers"`
}

// ViewportRequest is the body of POST /viewport.
type ViewportRequest struct {
	Width int `form:"width" validate:"required,gt=0,lte=100000"`
}
