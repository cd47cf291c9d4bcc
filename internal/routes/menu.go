package routes

// Icon names the glyph drawn next to a menu label.
type Icon int

const (
	IconOverview Icon = iota
	IconUsers
	IconAnalytics
	IconSettings
)

// MenuItem is one link of the dashboard navigation.
type MenuItem struct {
	Path  string
	Label string
	Icon  Icon
}

var menu = []MenuItem{
	{Path: HomePath, Label: "Overview", Icon: IconOverview},
	{Path: "/dashboard/users", Label: "Users", Icon: IconUsers},
	{Path: "/dashboard/analytics", Label: "Analytics", Icon: IconAnalytics},
	{Path: "/dashboard/settings", Label: "Settings", Icon: IconSettings},
}

// Menu returns the dashboard navigation in display order.
func Menu() []MenuItem {
	out := make([]MenuItem, len(menu))
	copy(out, menu)
	return out
}

// Active reports whether the item should be highlighted for path.
func (m MenuItem) Active(path string) bool {
	return m.Path == path
}
