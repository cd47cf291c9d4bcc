// Package components holds the small presentational building blocks shared
// by the layouts and pages.
package components

import (
	"github.com/nfrund/dashboard/internal/routes"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Outline paths drawn on a 24x24 grid.
var iconPaths = map[routes.Icon][]string{
	routes.IconOverview: {
		"M3 3h7v9H3z", "M14 3h7v5h-7z", "M14 12h7v9h-7z", "M3 16h7v5H3z",
	},
	routes.IconUsers: {
		"M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2",
		"M9 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8z",
		"M22 21v-2a4 4 0 0 0-3-3.87", "M16 3.13a4 4 0 0 1 0 7.75",
	},
	routes.IconAnalytics: {
		"M3 3v18h18", "M18 17V9", "M13 17V5", "M8 17v-3",
	},
	routes.IconSettings: {
		"M12 15a3 3 0 1 0 0-6 3 3 0 0 0 0 6z",
		"M19.4 15a1.65 1.65 0 0 0 .33 1.82l.06.06a2 2 0 1 1-2.83 2.83l-.06-.06a1.65 1.65 0 0 0-1.82-.33 1.65 1.65 0 0 0-1 1.51V21a2 2 0 1 1-4 0v-.09a1.65 1.65 0 0 0-1-1.51 1.65 1.65 0 0 0-1.82.33l-.06.06a2 2 0 1 1-2.83-2.83l.06-.06a1.65 1.65 0 0 0 .33-1.82 1.65 1.65 0 0 0-1.51-1H3a2 2 0 1 1 0-4h.09a1.65 1.65 0 0 0 1.51-1 1.65 1.65 0 0 0-.33-1.82l-.06-.06a2 2 0 1 1 2.83-2.83l.06.06a1.65 1.65 0 0 0 1.82.33H9a1.65 1.65 0 0 0 1-1.51V3a2 2 0 1 1 4 0v.09a1.65 1.65 0 0 0 1 1.51 1.65 1.65 0 0 0 1.82-.33l.06-.06a2 2 0 1 1 2.83 2.83l-.06.06a1.65 1.65 0 0 0-.33 1.82V9a1.65 1.65 0 0 0 1.51 1H21a2 2 0 1 1 0 4h-.09a1.65 1.65 0 0 0-1.51 1z",
	},
}

var (
	menuPaths = []string{"M4 6h16", "M4 12h16", "M4 18h16"}
	sunPaths  = []string{
		"M12 17a5 5 0 1 0 0-10 5 5 0 0 0 0 10z",
		"M12 1v2", "M12 21v2", "M4.22 4.22l1.42 1.42", "M18.36 18.36l1.42 1.42",
		"M1 12h2", "M21 12h2", "M4.22 19.78l1.42-1.42", "M18.36 5.64l1.42-1.42",
	}
	moonPaths = []string{"M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"}
)

func svg(class string, paths []string) g.Node {
	return g.El("svg",
		Class(class),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Aria("hidden", "true"),
		g.Map(paths, func(d string) g.Node {
			return g.El("path", g.Attr("d", d))
		}),
	)
}

// MenuIcon draws the glyph of a navigation entry.
func MenuIcon(icon routes.Icon) g.Node {
	return svg("icon", iconPaths[icon])
}

// HamburgerIcon opens the compact navigation drawer.
func HamburgerIcon() g.Node { return svg("icon", menuPaths) }

// SunIcon is shown while the light theme is in effect.
func SunIcon() g.Node { return svg("icon", sunPaths) }

// MoonIcon is shown while the dark theme is in effect.
func MoonIcon() g.Node { return svg("icon", moonPaths) }
