package layouts

import (
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/nfrund/dashboard/web/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Auth centers the content in a branded card. It has no navigation menu.
func Auth(c Chrome, content g.Node) g.Node {
	return Document(c,
		html.Div(html.Class("auth"),
			html.Div(html.Class("auth-toggle"), c.toggle()),
			html.Div(html.Class("auth-box"),
				html.A(html.Class("auth-brand"), html.Href(routes.RootPath), g.Text("Dashboard")),
				components.Flashes(c.Flashes),
				html.Div(html.Class("card"), content),
			),
		),
	)
}
