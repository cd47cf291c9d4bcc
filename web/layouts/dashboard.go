package layouts

import (
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/nfrund/dashboard/web/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func menu(items []routes.MenuItem, path string) g.Node {
	return html.Nav(html.Aria("label", "Main"),
		html.Ul(html.Class("menu"),
			g.Map(items, func(item routes.MenuItem) g.Node {
				return html.Li(
					html.A(html.Href(item.Path),
						g.If(item.Active(path), html.Aria("current", "page")),
						components.MenuIcon(item.Icon),
						html.Span(g.Text(item.Label)),
					),
				)
			}),
		),
	)
}

func sidebarHeader() g.Node {
	return html.H2(html.Class("sidebar-header"), g.Text("Dashboard"))
}

// Dashboard is the navigation shell. Wide viewports get a persistent
// sidebar; compact ones get a drawer opened from the header instead.
func Dashboard(c Chrome, content g.Node) g.Node {
	nav := menu(c.Menu, c.Path)

	return Document(c,
		html.Div(html.Class("shell"),
			g.If(!c.Compact, html.Aside(html.ID("sidebar"), sidebarHeader(), nav)),
			html.Div(html.Class("shell-main"),
				html.Header(html.Class("topbar"),
					html.Div(html.Class("topbar-start"),
						g.If(c.Compact, html.Details(html.ID("drawer"), g.Attr("data-drawer-trigger"),
							html.Summary(html.Class("btn"), html.Aria("label", "Open navigation"), components.HamburgerIcon()),
							html.Div(html.Class("drawer-panel"), sidebarHeader(), nav),
						)),
						html.H1(g.Text("My Dashboard")),
					),
					c.toggle(),
				),
				html.Main(html.Class("content"),
					components.Flashes(c.Flashes),
					content,
				),
			),
		),
	)
}
