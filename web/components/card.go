package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Card is a bordered panel with a heading, an optional description and a body.
func Card(title, description string, body ...g.Node) g.Node {
	return Div(Class("card"),
		g.If(title != "", H3(Class("card-title"), g.Text(title))),
		g.If(description != "", P(Class("card-description"), g.Text(description))),
		g.Group(body),
	)
}

// EmptyState is the placeholder body of a card whose content is not built yet.
func EmptyState(text string) g.Node {
	return Div(Class("empty"), g.Text(text))
}

// Badge is a small pill label.
func Badge(text string) g.Node {
	return Span(Class("badge"), g.Text(text))
}

// PageHeading is the title block at the top of every dashboard page.
func PageHeading(title, description string) g.Node {
	return Div(
		H1(Class("page-title"), g.Text(title)),
		P(Class("muted"), g.Text(description)),
	)
}
