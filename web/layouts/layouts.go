// Package layouts wraps page content in the dashboard, auth and default
// shells.
package layouts

import (
	"strconv"

	"github.com/nfrund/dashboard/internal/routes"
	"github.com/nfrund/dashboard/internal/theme"
	"github.com/nfrund/dashboard/internal/view"
	"github.com/nfrund/dashboard/web/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// AppName is appended to every document title.
const AppName = "Dashboard"

// Chrome is the view model shared by every shell.
type Chrome struct {
	Title         string
	Path          string
	Theme         theme.Theme
	ResolvedTheme theme.Theme
	// Compact selects the drawer navigation. WidthKnown is false until the
	// browser has reported its width.
	Compact    bool
	WidthKnown bool
	Breakpoint int
	Flashes    view.FlashData
	Menu       []routes.MenuItem
	Year       int
}

// CalculateTitle builds the document title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + AppName
	}
	return AppName
}

func (c Chrome) compactAttr() string {
	if !c.WidthKnown {
		return "unknown"
	}
	return strconv.FormatBool(c.Compact)
}

func (c Chrome) toggle() g.Node {
	return components.ThemeToggle(components.ThemeToggleProps{
		Current:  c.Theme,
		Resolved: c.ResolvedTheme,
		ReturnTo: c.Path,
	})
}

// Document is the html/head/body frame around a shell.
func Document(c Chrome, body ...g.Node) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			g.Attr("data-theme", c.Theme.String()),
			g.Attr("data-compact", c.compactAttr()),
			g.If(c.Breakpoint > 0, g.Attr("data-breakpoint", strconv.Itoa(c.Breakpoint))),
			html.Class(c.ResolvedTheme.String()),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.Meta(html.Name("color-scheme"), html.Content("light dark")),
				g.El("title", g.Text(CalculateTitle(c.Title))),
				html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
				html.Script(html.Src("https://unpkg.com/htmx.org@2.0.4"), html.Defer()),
				html.Script(html.Src("/static/app.js"), html.Defer()),
			),
			html.Body(g.Group(body)),
		),
	)
}

// Render wraps content in the shell selected by layout.
func Render(layout routes.Layout, c Chrome, content g.Node) g.Node {
	switch layout {
	case routes.LayoutAuth:
		return Auth(c, content)
	case routes.LayoutDefault:
		return Default(c, content)
	default:
		return Dashboard(c, content)
	}
}
