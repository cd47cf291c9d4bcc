package rendering

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()
	node := html.Div(html.Class("card"), g.Text("Users"))

	fromNode, err := r.RenderComponent(context.Background(), node)
	require.NoError(t, err)
	assert.Equal(t, `<div class="card">Users</div>`, string(fromNode))

	fromTempl, err := r.RenderComponent(context.Background(), view.Component(node))
	require.NoError(t, err)
	assert.Equal(t, fromNode, fromTempl)

	_, err = r.RenderComponent(context.Background(), 42)
	assert.ErrorContains(t, err, "unsupported component type")
}

func TestRenderComponent_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewUniversalRenderer().RenderComponent(ctx, html.Div(g.Text("Overview")))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewUniversalRenderer().RenderPage(c, http.StatusUnprocessableEntity, html.P(g.Text("Invalid email address")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<p>Invalid email address</p>", rec.Body.String())
}

func TestEchoRenderer(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", html.H1(g.Text("Dashboard")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<h1>Dashboard</h1>", rec.Body.String())
}
