package pages

import (
	"github.com/nfrund/dashboard/web/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

type section struct {
	title, description      string
	cardTitle, cardSubtitle string
	placeholder             string
}

func (s section) node() g.Node {
	return html.Div(html.Class("stack"),
		components.PageHeading(s.title, s.description),
		components.Card(s.cardTitle, s.cardSubtitle, components.EmptyState(s.placeholder)),
	)
}

// Users lists the registered users.
func Users() g.Node {
	return section{
		title:        "Users",
		description:  "Manage and view all users",
		cardTitle:    "All Users",
		cardSubtitle: "A list of all registered users in your system",
		placeholder:  "Users list will be displayed here",
	}.node()
}

// Analytics shows reports.
func Analytics() g.Node {
	return section{
		title:        "Analytics",
		description:  "View your analytics and reports",
		cardTitle:    "Analytics Data",
		cardSubtitle: "Your analytics and performance metrics",
		placeholder:  "Analytics charts will be displayed here",
	}.node()
}

// Settings holds the application preferences.
func Settings() g.Node {
	return section{
		title:        "Settings",
		description:  "Manage your application settings",
		cardTitle:    "Application Settings",
		cardSubtitle: "Configure your application preferences",
		placeholder:  "Settings form will be displayed here",
	}.node()
}
