// Package pages holds the content rendered inside the layout shells.
package pages

import (
	"github.com/nfrund/dashboard/web/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// StatCard is one headline figure of the overview.
type StatCard struct {
	Title  string
	Value  string
	Change string
}

// Activity is one row of the recent activity card.
type Activity struct {
	Label  string
	When   string
	Status string
}

// Stats are the figures shown on the overview.
var Stats = []StatCard{
	{Title: "Total Users", Value: "1,234", Change: "+10% from last month"},
	{Title: "Revenue", Value: "$45,231", Change: "+8% from last month"},
	{Title: "Conversion Rate", Value: "3.24%", Change: "+0.5% from last month"},
	{Title: "Active Now", Value: "573", Change: "+12 from 2 hours ago"},
}

// RecentActivity lists the latest dashboard activities.
var RecentActivity = []Activity{
	{Label: "User activity 1", When: "2 hours ago", Status: "Active"},
	{Label: "User activity 2", When: "2 hours ago", Status: "Active"},
	{Label: "User activity 3", When: "2 hours ago", Status: "Active"},
}

// Overview is the dashboard landing page.
func Overview() g.Node {
	return html.Div(html.Class("stack"),
		components.PageHeading("Dashboard Overview", "Welcome to your dashboard"),
		html.Div(html.Class("stats"),
			g.Map(Stats, func(s StatCard) g.Node {
				return components.Card(s.Title, "",
					html.Div(html.Class("stat-value"), g.Text(s.Value)),
					html.P(html.Class("stat-change"), g.Text(s.Change)),
				)
			}),
		),
		components.Card("Recent Activity", "Your latest dashboard activities",
			html.Div(html.ID("activity"),
				g.Map(RecentActivity, func(a Activity) g.Node {
					return html.Div(html.Class("activity"),
						html.Div(
							html.P(g.Text(a.Label)),
							html.P(html.Class("muted"), g.Text(a.When)),
						),
						components.Badge(a.Status),
					)
				}),
			),
		),
	)
}
