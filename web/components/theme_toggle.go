package components

import (
	"github.com/nfrund/dashboard/internal/theme"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Endpoints handled by the theme handler.
const (
	ThemeTogglePath = "/theme/toggle"
	ThemeSetPath    = "/theme"
)

// ThemeToggleProps carries the state the toggle needs to draw itself.
type ThemeToggleProps struct {
	Current  theme.Theme
	Resolved theme.Theme
	// ReturnTo is where a non-htmx form post lands afterwards.
	ReturnTo string
}

func themeForm(action string, fields ...g.Node) g.Node {
	return g.El("form",
		Method("post"),
		Action(action),
		hx.Post(action),
		hx.Swap("none"),
		g.Group(fields),
	)
}

// ThemeToggle is the light/dark switch plus the Light/Dark/System menu.
// Without JavaScript both submit as ordinary forms.
func ThemeToggle(p ThemeToggleProps) g.Node {
	next := "Switch to dark theme"
	if p.Resolved == theme.Dark {
		next = "Switch to light theme"
	}
	returnTo := Input(Type("hidden"), Name("return_to"), Value(p.ReturnTo))

	return Div(ID("theme-toggle"), Class("theme-controls"),
		themeForm(ThemeTogglePath,
			returnTo,
			Input(Type("hidden"), Name("prefers"), Value(p.Resolved.String())),
			Button(Type("submit"), Class("btn"), Aria("label", next), g.Attr("title", next),
				g.If(p.Resolved == theme.Dark, MoonIcon()),
				g.If(p.Resolved != theme.Dark, SunIcon()),
			),
		),
		Details(Class("theme-menu"),
			Summary(Aria("label", "Choose theme"), g.Text(p.Current.Label())),
			Div(Class("theme-options"),
				g.Map(theme.All(), func(t theme.Theme) g.Node {
					return themeForm(ThemeSetPath,
						returnTo,
						Button(Type("submit"), Class("btn btn-ghost"),
							Name("theme"), Value(t.String()),
							g.If(t == p.Current, Aria("pressed", "true")),
							g.Text(t.Label()),
						),
					)
				}),
			),
		),
	)
}
