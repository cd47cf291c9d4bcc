package handlers

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/middleware"
	"github.com/nfrund/dashboard/internal/rendering"
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/nfrund/dashboard/internal/view"
	"github.com/nfrund/dashboard/web/layouts"
	g "maragu.dev/gomponents"
)

// View wraps page content in the layout of its route entry and writes the
// response.
type View struct {
	renderer rendering.Renderer
	now      func() time.Time
}

// NewView creates a View writing through renderer.
func NewView(renderer rendering.Renderer) *View {
	return &View{renderer: renderer, now: time.Now}
}

// Chrome collects the per-request state every shell reads.
func (v *View) Chrome(c echo.Context, entry routes.Entry) layouts.Chrome {
	store := middleware.ThemeStore(c)
	vp := middleware.Viewport(c)
	_, known := vp.Width()

	return layouts.Chrome{
		Title:         entry.Title,
		Path:          entry.Path,
		Theme:         store.Current(),
		ResolvedTheme: store.Resolve(middleware.PrefersDark(c.Request())),
		Compact:       vp.IsCompact(),
		WidthKnown:    known,
		Breakpoint:    vp.Breakpoint(),
		Flashes:       view.GetFlashData(c),
		Menu:          routes.Menu(),
		Year:          v.now().Year(),
	}
}

// Render writes content inside the shell of entry with the given status.
func (v *View) Render(c echo.Context, status int, entry routes.Entry, content g.Node) error {
	page := layouts.Render(entry.Layout, v.Chrome(c, entry), content)
	return v.renderer.RenderPage(c, status, page)
}
