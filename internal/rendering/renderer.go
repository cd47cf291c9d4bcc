package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/middleware"
	"github.com/nfrund/dashboard/internal/view"
	"maragu.dev/gomponents"
)

// Renderer renders templ components and gomponents nodes.
type Renderer interface {
	// RenderComponent renders a component to bytes. Used by the CLI and for fragments.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full HTML response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer handles every component type the views produce.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// asTempl brings every supported component under the templ.Component contract.
func asTempl(component any) (templ.Component, error) {
	switch c := component.(type) {
	case templ.Component:
		return c, nil
	case gomponents.Node:
		return view.Component(c), nil
	default:
		return nil, fmt.Errorf("unsupported component type: %T", component)
	}
}

func (tr *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	tc, err := asTempl(component)
	if err != nil {
		return err
	}
	return tc.Render(ctx, w)
}

// RenderComponent implements Renderer.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer. The page is rendered into a buffer first
// so a failure can still produce a clean error response.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := tr.RenderComponent(c.Request().Context(), component)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to render page", "error", err)
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer for c.Render(status, name, component).
// The name is ignored; the component travels in data.
func (tr *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return tr.render(c.Request().Context(), data, w)
}
