package layouts

import (
	"github.com/nfrund/dashboard/web/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Default is the plain header/main/footer shell.
func Default(c Chrome, content g.Node) g.Node {
	return Document(c,
		html.Div(html.Class("page"),
			html.Header(html.Class("page-header"),
				html.H1(g.Text("My App")),
				c.toggle(),
			),
			html.Main(html.Class("page-main"),
				components.Flashes(c.Flashes),
				content,
			),
			html.Footer(html.Class("page-footer"),
				html.P(g.Textf("© %d My App. All rights reserved.", c.Year)),
			),
		),
	)
}
